package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnlive/internal/models/db_models"
)

type CourseRepository interface {
	Insert(ctx context.Context, course *db_models.Course) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Course, error)
	// List returns every course, or only those of grade when it is not empty.
	List(ctx context.Context, grade string) ([]db_models.Course, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]db_models.Course, error)
	// AddStudent appends studentID to the course's student set in a single
	// conditional update. It reports false when the id was already present
	// or the course does not exist.
	AddStudent(ctx context.Context, courseID, studentID uuid.UUID) (bool, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Insert(ctx context.Context, course *db_models.Course) error {
	if course.Students == nil {
		course.Students = []string{}
	}
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Course, error) {
	var course db_models.Course
	err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &course, nil
}

func (r *courseRepository) List(ctx context.Context, grade string) ([]db_models.Course, error) {
	var courses []db_models.Course
	query := r.db.WithContext(ctx).Order("created_at ASC")
	if grade != "" {
		query = query.Where("grade = ?", grade)
	}
	if err := query.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]db_models.Course, error) {
	var courses []db_models.Course
	err := r.db.WithContext(ctx).
		Where("? = ANY(students)", studentID.String()).
		Order("created_at ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) AddStudent(ctx context.Context, courseID, studentID uuid.UUID) (bool, error) {
	sid := studentID.String()
	res := r.db.WithContext(ctx).
		Model(&db_models.Course{}).
		Where("id = ? AND NOT (? = ANY(students))", courseID, sid).
		Update("students", gorm.Expr("array_append(students, ?)", sid))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
