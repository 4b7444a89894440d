package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codewithnuh/school-management-system-sub000/internal/model"
)

// ClassRepository provides read access to classes and their sections.
type ClassRepository interface {
	GetByID(ctx context.Context, id string) (*model.Class, error)
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo creates a ClassRepository.
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) GetByID(ctx context.Context, id string) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Preload("Sections").
		Where("class_id = ?", id).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}
