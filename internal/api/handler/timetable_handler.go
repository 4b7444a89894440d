package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/codewithnuh/school-management-system-sub000/internal/dto"
	"github.com/codewithnuh/school-management-system-sub000/internal/service"
	"github.com/codewithnuh/school-management-system-sub000/pkg/response"
)

// TimetableHandler exposes timetable generation and the read-side views.
type TimetableHandler struct {
	timetableSvc service.TimetableService
}

// NewTimetableHandler creates a TimetableHandler.
func NewTimetableHandler(timetableSvc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// GenerateTimetables generates one timetable per section of a class.
// POST /api/v1/classes/:classId/timetables
func (h *TimetableHandler) GenerateTimetables(c *gin.Context) {
	classID := c.Param("classId")
	if classID == "" {
		response.BadRequest(c, 10001, "class id is required")
		return
	}

	// request body is optional; an empty body means all defaults
	var req dto.GenerateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	timetables, err := h.timetableSvc.Generate(c.Request.Context(), classID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, gin.H{"list": timetables})
}

// GetSectionTimetable returns a section's most recent timetable.
// GET /api/v1/classes/:classId/sections/:sectionId/timetable
func (h *TimetableHandler) GetSectionTimetable(c *gin.Context) {
	classID := c.Param("classId")
	sectionID := c.Param("sectionId")
	if classID == "" || sectionID == "" {
		response.BadRequest(c, 10001, "class id and section id are required")
		return
	}

	timetable, err := h.timetableSvc.GetTimetable(c.Request.Context(), classID, sectionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, timetable)
}

// GetTeacherTimetable returns all of a teacher's scheduled periods.
// GET /api/v1/teachers/:teacherId/timetable
func (h *TimetableHandler) GetTeacherTimetable(c *gin.Context) {
	teacherID := c.Param("teacherId")
	if teacherID == "" {
		response.BadRequest(c, 10001, "teacher id is required")
		return
	}

	entries, err := h.timetableSvc.GetTeacherTimetable(c.Request.Context(), teacherID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// GetWeeklyTimetable returns the Monday..Friday grouped view for a class,
// filtered by exactly one of section_id or teacher_id.
// GET /api/v1/classes/:classId/timetable/weekly?section_id=x | teacher_id=y
func (h *TimetableHandler) GetWeeklyTimetable(c *gin.Context) {
	classID := c.Param("classId")
	if classID == "" {
		response.BadRequest(c, 10001, "class id is required")
		return
	}

	var req dto.WeeklyTimetableRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	weekly, err := h.timetableSvc.GetWeeklyTimetable(c.Request.Context(), classID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, weekly)
}
