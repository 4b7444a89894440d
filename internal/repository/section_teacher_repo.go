package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codewithnuh/school-management-system-sub000/internal/model"
)

// SectionTeacherRepository provides read access to a section's ordered
// subject-teacher roster.
type SectionTeacherRepository interface {
	ListBySection(ctx context.Context, sectionID string) ([]model.SectionTeacher, error)
}

type sectionTeacherRepo struct {
	db *gorm.DB
}

// NewSectionTeacherRepo creates a SectionTeacherRepository.
func NewSectionTeacherRepo(db *gorm.DB) SectionTeacherRepository {
	return &sectionTeacherRepo{db: db}
}

func (r *sectionTeacherRepo) ListBySection(ctx context.Context, sectionID string) ([]model.SectionTeacher, error) {
	var roster []model.SectionTeacher
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Where("section_id = ?", sectionID).
		Order("position ASC, created_at ASC").
		Find(&roster).Error
	return roster, err
}
