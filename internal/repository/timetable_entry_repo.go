package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codewithnuh/school-management-system-sub000/internal/model"
)

// TimetableEntryRepository provides read access to scheduled periods.
// Day-of-week ordering uses name labels, so the canonical weekday sort is
// applied at the service layer; repositories order by period_number only.
type TimetableEntryRepository interface {
	ListByTeacher(ctx context.Context, teacherID string) ([]model.TimetableEntry, error)
	ListBySection(ctx context.Context, classID, sectionID string) ([]model.TimetableEntry, error)
	ListByClassAndTeacher(ctx context.Context, classID, teacherID string) ([]model.TimetableEntry, error)
}

type timetableEntryRepo struct {
	db *gorm.DB
}

// NewTimetableEntryRepo creates a TimetableEntryRepository.
func NewTimetableEntryRepo(db *gorm.DB) TimetableEntryRepository {
	return &timetableEntryRepo{db: db}
}

func (r *timetableEntryRepo) ListByTeacher(ctx context.Context, teacherID string) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Preload("Timetable").
		Preload("Timetable.Section").
		Preload("Timetable.Class").
		Where("teacher_id = ?", teacherID).
		Order("period_number ASC").
		Find(&entries).Error
	return entries, err
}

func (r *timetableEntryRepo) ListBySection(ctx context.Context, classID, sectionID string) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Preload("Timetable").
		Preload("Timetable.Section").
		Where("class_id = ? AND section_id = ?", classID, sectionID).
		Order("period_number ASC").
		Find(&entries).Error
	return entries, err
}

func (r *timetableEntryRepo) ListByClassAndTeacher(ctx context.Context, classID, teacherID string) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Preload("Timetable").
		Preload("Timetable.Section").
		Where("class_id = ? AND teacher_id = ?", classID, teacherID).
		Order("period_number ASC").
		Find(&entries).Error
	return entries, err
}
