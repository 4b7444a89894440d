package handler

import "github.com/codewithnuh/school-management-system-sub000/internal/service"

// Handler is the aggregate entry point for all handlers.
type Handler struct {
	TimeSlot  *TimeSlotHandler
	Timetable *TimetableHandler
	Export    *ExportHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		TimeSlot:  NewTimeSlotHandler(svc.TimeSlot),
		Timetable: NewTimetableHandler(svc.Timetable),
		Export:    NewExportHandler(svc.Export),
	}
}
