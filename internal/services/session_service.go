package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"learnlive/internal/models/db_models"
	"learnlive/internal/models/request_models"
	"learnlive/internal/repositories"
	"learnlive/pkg/utils"
)

const meetingLinkPrefix = "https://meet.jit.si/learnlive-session-"

type SessionServiceInterface interface {
	ListUpcoming(ctx context.Context, principal *utils.Principal) ([]db_models.Session, error)
	CreateSession(ctx context.Context, principal *utils.Principal, request request_models.CreateSessionRequest) (*db_models.Session, error)
	GetSession(ctx context.Context, principal *utils.Principal, sessionID string) (*db_models.Session, error)
}

type SessionService struct {
	sessionRepo repositories.SessionRepository
	courseRepo  repositories.CourseRepository
	now         func() time.Time
	logger      *zap.Logger
}

func NewSessionService(sessionRepo repositories.SessionRepository, courseRepo repositories.CourseRepository, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		courseRepo:  courseRepo,
		now:         time.Now,
		logger:      logger.Named("session"),
	}
}

// WithClock replaces the clock used to decide which sessions are upcoming.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

func (s *SessionService) ListUpcoming(ctx context.Context, principal *utils.Principal) ([]db_models.Session, error) {
	today := utils.TodayUTC(s.now())

	if !principal.IsStudent() {
		sessions, err := s.sessionRepo.ListUpcomingByTeacher(ctx, principal.AccountID, today)
		if err != nil {
			return nil, storageError("list sessions", err)
		}
		return sessions, nil
	}

	courses, err := s.courseRepo.ListByStudent(ctx, principal.AccountID)
	if err != nil {
		return nil, storageError("list enrolled courses", err)
	}
	courseIDs := make([]uuid.UUID, 0, len(courses))
	for _, c := range courses {
		courseIDs = append(courseIDs, c.ID)
	}

	sessions, err := s.sessionRepo.ListUpcomingByCourses(ctx, courseIDs, today)
	if err != nil {
		return nil, storageError("list sessions", err)
	}
	return sessions, nil
}

func (s *SessionService) CreateSession(ctx context.Context, principal *utils.Principal, request request_models.CreateSessionRequest) (*db_models.Session, error) {
	course, err := findCourse(ctx, s.courseRepo, request.CourseID)
	if err != nil {
		return nil, err
	}
	if err := CanCreateSession(principal, course); err != nil {
		return nil, err
	}

	teacher := request.Teacher
	if teacher == "" {
		teacher = principal.Name
	}

	session := &db_models.Session{
		CourseID:    course.ID,
		TeacherID:   principal.AccountID,
		Title:       request.Title,
		Description: request.Description,
		ModuleID:    request.ModuleID,
		Date:        request.Date,
		Time:        request.Time,
		Duration:    request.Duration,
		Teacher:     teacher,
		MeetingLink: meetingLinkPrefix + uuid.NewString(),
		Attendees:   []string{},
	}
	if err := s.sessionRepo.Insert(ctx, session); err != nil {
		return nil, storageError("insert session", err)
	}

	s.logger.Info("session scheduled",
		zap.String("session_id", session.ID.String()),
		zap.String("course_id", course.ID.String()),
		zap.String("date", session.Date))
	return session, nil
}

func (s *SessionService) GetSession(ctx context.Context, principal *utils.Principal, sessionID string) (*db_models.Session, error) {
	id, err := utils.ParseID(sessionID)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.FindById(ctx, id)
	if err != nil {
		return nil, storageError("find session", err)
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	course, err := s.courseRepo.FindById(ctx, session.CourseID)
	if err != nil {
		return nil, storageError("find course", err)
	}
	if course == nil {
		// course gone: fall back to the role and creator rules
		if principal.IsTeacher() || session.TeacherID == principal.AccountID {
			return session, nil
		}
		return nil, utils.ErrSessionNotFound
	}

	if err := CanReadCourseContent(principal, course); err != nil {
		return nil, err
	}
	return session, nil
}
