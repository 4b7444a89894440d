package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codewithnuh/school-management-system-sub000/internal/model"
)

// TimetableRepository persists generated timetables.
type TimetableRepository interface {
	// CreateBatch inserts all timetables of one generation run, each with
	// its entries, inside a single transaction. Any failure rolls back the
	// whole run.
	CreateBatch(ctx context.Context, timetables []*model.Timetable) error
	// GetBySection returns the most recent timetable for a section with
	// entries and their subject/teacher associations loaded.
	GetBySection(ctx context.Context, classID, sectionID string) (*model.Timetable, error)
}

type timetableRepo struct {
	db *gorm.DB
}

// NewTimetableRepo creates a TimetableRepository.
func NewTimetableRepo(db *gorm.DB) TimetableRepository {
	return &timetableRepo{db: db}
}

func (r *timetableRepo) CreateBatch(ctx context.Context, timetables []*model.Timetable) error {
	if len(timetables) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range timetables {
			// association create inserts the header and its entries together
			if err := tx.Create(t).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *timetableRepo) GetBySection(ctx context.Context, classID, sectionID string) (*model.Timetable, error) {
	var timetable model.Timetable
	err := r.db.WithContext(ctx).
		Preload("Section").
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("period_number ASC")
		}).
		Preload("Entries.Subject").
		Preload("Entries.Teacher").
		Where("class_id = ? AND section_id = ?", classID, sectionID).
		Order("created_at DESC").
		First(&timetable).Error
	if err != nil {
		return nil, err
	}
	return &timetable, nil
}
