package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnlive/internal/models/db_models"
)

type MaterialRepository interface {
	Insert(ctx context.Context, material *db_models.CourseMaterial) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.CourseMaterial, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]db_models.CourseMaterial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type materialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Insert(ctx context.Context, material *db_models.CourseMaterial) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *materialRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.CourseMaterial, error) {
	var material db_models.CourseMaterial
	err := r.db.WithContext(ctx).First(&material, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &material, nil
}

func (r *materialRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]db_models.CourseMaterial, error) {
	var materials []db_models.CourseMaterial
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&materials).Error
	return materials, err
}

func (r *materialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.CourseMaterial{}, "id = ?", id).Error
}
