package service

import (
	"go.uber.org/zap"

	"github.com/codewithnuh/school-management-system-sub000/internal/repository"
	"github.com/codewithnuh/school-management-system-sub000/pkg/redis"
)

// Service is the aggregate entry point for all services.
type Service struct {
	TimeSlot  TimeSlotService
	Timetable TimetableService
	Export    ExportService
}

// NewService wires the service aggregate. cache may be nil when redis is
// unavailable; services degrade to uncached reads.
func NewService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		TimeSlot:  NewTimeSlotService(repo, logger),
		Timetable: NewTimetableService(repo, cache, logger),
		Export:    NewExportService(repo, logger),
	}
}
