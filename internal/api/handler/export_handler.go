package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/codewithnuh/school-management-system-sub000/internal/service"
	"github.com/codewithnuh/school-management-system-sub000/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar"
)

// ExportHandler streams timetable file exports.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSectionXLSX downloads a section's timetable as a spreadsheet grid.
// GET /api/v1/classes/:classId/sections/:sectionId/timetable/export/xlsx
func (h *ExportHandler) ExportSectionXLSX(c *gin.Context) {
	classID := c.Param("classId")
	sectionID := c.Param("sectionId")
	if classID == "" || sectionID == "" {
		response.BadRequest(c, 10001, "class id and section id are required")
		return
	}

	buf, filename, err := h.exportSvc.ExportSectionXLSX(c.Request.Context(), classID, sectionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	writeDownload(c, contentTypeXLSX, filename, buf.Bytes())
}

// ExportSectionICS downloads a section's timetable as an iCalendar file.
// GET /api/v1/classes/:classId/sections/:sectionId/timetable/export/ics
func (h *ExportHandler) ExportSectionICS(c *gin.Context) {
	classID := c.Param("classId")
	sectionID := c.Param("sectionId")
	if classID == "" || sectionID == "" {
		response.BadRequest(c, 10001, "class id and section id are required")
		return
	}

	buf, filename, err := h.exportSvc.ExportSectionICS(c.Request.Context(), classID, sectionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	writeDownload(c, contentTypeICS, filename, buf.Bytes())
}

func writeDownload(c *gin.Context, contentType, filename string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}
