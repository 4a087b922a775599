package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnlive/internal/models/db_models"
)

type SessionRepository interface {
	Insert(ctx context.Context, session *db_models.Session) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Session, error)
	// ListUpcomingByTeacher and ListUpcomingByCourses return sessions dated on
	// or after fromDate, ordered by date then time.
	ListUpcomingByTeacher(ctx context.Context, teacherID uuid.UUID, fromDate string) ([]db_models.Session, error)
	ListUpcomingByCourses(ctx context.Context, courseIDs []uuid.UUID, fromDate string) ([]db_models.Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Insert(ctx context.Context, session *db_models.Session) error {
	if session.Attendees == nil {
		session.Attendees = []string{}
	}
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Session, error) {
	var session db_models.Session
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepository) ListUpcomingByTeacher(ctx context.Context, teacherID uuid.UUID, fromDate string) ([]db_models.Session, error) {
	var sessions []db_models.Session
	err := r.db.WithContext(ctx).
		Where("teacher_id = ? AND date >= ?", teacherID, fromDate).
		Order("date ASC").Order("time ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) ListUpcomingByCourses(ctx context.Context, courseIDs []uuid.UUID, fromDate string) ([]db_models.Session, error) {
	if len(courseIDs) == 0 {
		return []db_models.Session{}, nil
	}

	var sessions []db_models.Session
	err := r.db.WithContext(ctx).
		Where("course_id IN ? AND date >= ?", courseIDs, fromDate).
		Order("date ASC").Order("time ASC").
		Find(&sessions).Error
	return sessions, err
}
