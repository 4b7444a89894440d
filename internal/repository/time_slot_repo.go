package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codewithnuh/school-management-system-sub000/internal/model"
)

// TimeSlotRepository persists raw day-template slots.
type TimeSlotRepository interface {
	BatchCreate(ctx context.Context, slots []model.TimeSlot) error
	ListByClass(ctx context.Context, classID string, day string) ([]model.TimeSlot, error)
}

type timeSlotRepo struct {
	db *gorm.DB
}

// NewTimeSlotRepo creates a TimeSlotRepository.
func NewTimeSlotRepo(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepo{db: db}
}

func (r *timeSlotRepo) BatchCreate(ctx context.Context, slots []model.TimeSlot) error {
	if len(slots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&slots).Error
}

func (r *timeSlotRepo) ListByClass(ctx context.Context, classID string, day string) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	db := r.db.WithContext(ctx).Where("class_id = ?", classID)
	if day != "" {
		db = db.Where("day = ?", day)
	}
	err := db.Order("day ASC, start_time ASC").Find(&slots).Error
	return slots, err
}
