package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/codewithnuh/school-management-system-sub000/internal/dto"
	"github.com/codewithnuh/school-management-system-sub000/internal/model"
	"github.com/codewithnuh/school-management-system-sub000/internal/repository"
	"github.com/codewithnuh/school-management-system-sub000/pkg/apperrors"
)

// TimeSlotService manages raw day-template slots for a class, independent
// of the roster-driven timetable flow.
type TimeSlotService interface {
	// GenerateForClass builds and persists raw PERIOD/BREAK blocks for a
	// class, one generator pass per requested day label.
	GenerateForClass(ctx context.Context, classID string, req *dto.GenerateTimeSlotsRequest) ([]dto.TimeSlotResponse, error)
	// ListByClass returns a class's persisted slots, optionally filtered by day.
	ListByClass(ctx context.Context, classID string, req *dto.TimeSlotListRequest) ([]dto.TimeSlotResponse, error)
}

type timeSlotService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimeSlotService creates a TimeSlotService.
func NewTimeSlotService(repo *repository.Repository, logger *zap.Logger) TimeSlotService {
	return &timeSlotService{repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// GenerateTimeSlots — pure day-template generator
// ════════════════════════════════════════════════════════════
//
// Starting at startTime, emit PERIOD blocks of periodLength minutes. A
// period whose end would pass endTime is dropped, never truncated. When
// breakLength > 0, every period is followed by a BREAK block and the next
// period starts at the break's end. All blocks carry the single day label
// given by the caller.

// GenerateTimeSlots materializes the labeled blocks for one day template.
func GenerateTimeSlots(startTime, endTime string, periodLength, breakLength int, day string) ([]model.TimeSlot, error) {
	if periodLength <= 0 {
		return nil, apperrors.Validation("period length must be positive, got %d", periodLength)
	}
	if breakLength < 0 {
		return nil, apperrors.Validation("break length must not be negative, got %d", breakLength)
	}
	if !isSlotDay(day) {
		return nil, apperrors.Validation("invalid slot day %q", day)
	}

	cursor, err := parseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return nil, err
	}

	var slots []model.TimeSlot
	for {
		periodEnd := cursor + periodLength
		if periodEnd > end {
			break
		}
		slots = append(slots, model.TimeSlot{
			Day:       day,
			Type:      model.SlotTypePeriod,
			StartTime: formatClock(cursor),
			EndTime:   formatClock(periodEnd),
		})
		cursor = periodEnd

		if breakLength > 0 {
			breakEnd := cursor + breakLength
			slots = append(slots, model.TimeSlot{
				Day:       day,
				Type:      model.SlotTypeBreak,
				StartTime: formatClock(cursor),
				EndTime:   formatClock(breakEnd),
			})
			cursor = breakEnd
		}
	}

	return slots, nil
}

func isSlotDay(day string) bool {
	for _, d := range model.SlotDays {
		if d == day {
			return true
		}
	}
	return false
}

// ────────────────────── GenerateForClass ──────────────────────

func (s *timeSlotService) GenerateForClass(ctx context.Context, classID string, req *dto.GenerateTimeSlotsRequest) ([]dto.TimeSlotResponse, error) {
	if _, err := s.repo.Class.GetByID(ctx, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("class", classID)
		}
		s.logger.Error("load class failed", zap.String("classID", classID), zap.Error(err))
		return nil, err
	}

	days := req.Days
	if len(days) == 0 {
		days = model.SlotDays
	}

	var slots []model.TimeSlot
	for _, day := range days {
		daySlots, err := GenerateTimeSlots(req.StartTime, req.EndTime, req.PeriodLength, req.BreakLength, day)
		if err != nil {
			return nil, err
		}
		for i := range daySlots {
			daySlots[i].ClassID = classID
		}
		slots = append(slots, daySlots...)
	}
	if len(slots) == 0 {
		return nil, apperrors.Validation("window %s-%s fits no period of %d minutes", req.StartTime, req.EndTime, req.PeriodLength)
	}

	if err := s.repo.TimeSlot.BatchCreate(ctx, slots); err != nil {
		s.logger.Error("persist time slots failed", zap.String("classID", classID), zap.Error(err))
		return nil, err
	}

	return toTimeSlotResponses(slots), nil
}

// ────────────────────── ListByClass ──────────────────────

func (s *timeSlotService) ListByClass(ctx context.Context, classID string, req *dto.TimeSlotListRequest) ([]dto.TimeSlotResponse, error) {
	if req.Day != "" && !isSlotDay(req.Day) {
		return nil, apperrors.Validation("invalid slot day %q", req.Day)
	}

	slots, err := s.repo.TimeSlot.ListByClass(ctx, classID, req.Day)
	if err != nil {
		s.logger.Error("list time slots failed", zap.String("classID", classID), zap.Error(err))
		return nil, err
	}

	return toTimeSlotResponses(slots), nil
}

// ── response converters ──

func toTimeSlotResponses(slots []model.TimeSlot) []dto.TimeSlotResponse {
	result := make([]dto.TimeSlotResponse, 0, len(slots))
	for _, sl := range slots {
		result = append(result, dto.TimeSlotResponse{
			ID:        sl.TimeSlotID,
			ClassID:   sl.ClassID,
			Day:       sl.Day,
			Type:      sl.Type,
			StartTime: sl.StartTime,
			EndTime:   sl.EndTime,
		})
	}
	return result
}
