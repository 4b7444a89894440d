package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codewithnuh/school-management-system-sub000/config"
	"github.com/codewithnuh/school-management-system-sub000/internal/api/handler"
	"github.com/codewithnuh/school-management-system-sub000/internal/api/middleware"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds and returns the Gin engine with all routes mounted.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		classes := v1.Group("/classes/:classId")
		{
			// raw day-template slots
			classes.POST("/time-slots", h.TimeSlot.GenerateTimeSlots)
			classes.GET("/time-slots", h.TimeSlot.ListTimeSlots)

			// roster-driven timetables
			classes.POST("/timetables", h.Timetable.GenerateTimetables)
			classes.GET("/timetable/weekly", h.Timetable.GetWeeklyTimetable)

			sections := classes.Group("/sections/:sectionId")
			{
				sections.GET("/timetable", h.Timetable.GetSectionTimetable)
				sections.GET("/timetable/export/xlsx", h.Export.ExportSectionXLSX)
				sections.GET("/timetable/export/ics", h.Export.ExportSectionICS)
			}
		}

		teachers := v1.Group("/teachers")
		{
			teachers.GET("/:teacherId/timetable", h.Timetable.GetTeacherTimetable)
		}
	}

	return r
}
