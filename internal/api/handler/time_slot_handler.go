package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/codewithnuh/school-management-system-sub000/internal/dto"
	"github.com/codewithnuh/school-management-system-sub000/internal/service"
	"github.com/codewithnuh/school-management-system-sub000/pkg/response"
)

// TimeSlotHandler exposes the raw day-template slot endpoints.
type TimeSlotHandler struct {
	timeSlotSvc service.TimeSlotService
}

// NewTimeSlotHandler creates a TimeSlotHandler.
func NewTimeSlotHandler(timeSlotSvc service.TimeSlotService) *TimeSlotHandler {
	return &TimeSlotHandler{timeSlotSvc: timeSlotSvc}
}

// GenerateTimeSlots builds and persists PERIOD/BREAK blocks for a class.
// POST /api/v1/classes/:classId/time-slots
func (h *TimeSlotHandler) GenerateTimeSlots(c *gin.Context) {
	classID := c.Param("classId")
	if classID == "" {
		response.BadRequest(c, 10001, "class id is required")
		return
	}

	var req dto.GenerateTimeSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	slots, err := h.timeSlotSvc.GenerateForClass(c.Request.Context(), classID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, gin.H{"list": slots})
}

// ListTimeSlots returns a class's persisted slots, optionally by day.
// GET /api/v1/classes/:classId/time-slots?day=MON
func (h *TimeSlotHandler) ListTimeSlots(c *gin.Context) {
	classID := c.Param("classId")
	if classID == "" {
		response.BadRequest(c, 10001, "class id is required")
		return
	}

	var req dto.TimeSlotListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	slots, err := h.timeSlotSvc.ListByClass(c.Request.Context(), classID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": slots})
}
