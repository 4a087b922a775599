package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"learnlive/internal/models/db_models"
	"learnlive/internal/models/request_models"
	"learnlive/internal/repositories"
	"learnlive/pkg/utils"
)

type CourseServiceInterface interface {
	ListCourses(ctx context.Context, grade string) ([]db_models.Course, error)
	GetCourse(ctx context.Context, courseID string) (*db_models.Course, error)
	ListEnrolledCourses(ctx context.Context, principal *utils.Principal) ([]db_models.Course, error)
	CreateCourse(ctx context.Context, principal *utils.Principal, request request_models.CreateCourseRequest) (*db_models.Course, error)
	Enroll(ctx context.Context, principal *utils.Principal, courseID string) error
}

type CourseService struct {
	courseRepo repositories.CourseRepository
	logger     *zap.Logger
}

func NewCourseService(courseRepo repositories.CourseRepository, logger *zap.Logger) CourseServiceInterface {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger.Named("course"),
	}
}

func (s *CourseService) ListCourses(ctx context.Context, grade string) ([]db_models.Course, error) {
	courses, err := s.courseRepo.List(ctx, strings.TrimSpace(grade))
	if err != nil {
		return nil, storageError("list courses", err)
	}
	return courses, nil
}

func (s *CourseService) GetCourse(ctx context.Context, courseID string) (*db_models.Course, error) {
	return findCourse(ctx, s.courseRepo, courseID)
}

func (s *CourseService) ListEnrolledCourses(ctx context.Context, principal *utils.Principal) ([]db_models.Course, error) {
	if err := CanListEnrolled(principal); err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.ListByStudent(ctx, principal.AccountID)
	if err != nil {
		return nil, storageError("list enrolled courses", err)
	}
	return courses, nil
}

func (s *CourseService) CreateCourse(ctx context.Context, principal *utils.Principal, request request_models.CreateCourseRequest) (*db_models.Course, error) {
	if err := CanCreateCourse(principal); err != nil {
		return nil, err
	}

	course := &db_models.Course{
		Title:       request.Title,
		Description: request.Description,
		Grade:       request.Grade,
		Price:       request.Price,
		Thumbnail:   request.Thumbnail,
		TeacherID:   principal.AccountID,
		TeacherName: principal.Name,
		Students:    []string{},
	}
	if err := s.courseRepo.Insert(ctx, course); err != nil {
		return nil, storageError("insert course", err)
	}

	s.logger.Info("course created",
		zap.String("course_id", course.ID.String()),
		zap.String("teacher_id", principal.AccountID.String()))
	return course, nil
}

func (s *CourseService) Enroll(ctx context.Context, principal *utils.Principal, courseID string) error {
	course, err := findCourse(ctx, s.courseRepo, courseID)
	if err != nil {
		return err
	}
	if err := CanEnroll(principal, course); err != nil {
		return err
	}

	added, err := s.courseRepo.AddStudent(ctx, course.ID, principal.AccountID)
	if err != nil {
		return storageError("enroll student", err)
	}
	// lost a race with a concurrent enrollment of the same student
	if !added {
		return utils.ErrAlreadyEnrolled
	}

	s.logger.Info("student enrolled",
		zap.String("course_id", course.ID.String()),
		zap.String("student_id", principal.AccountID.String()))
	return nil
}

// findCourse parses courseID and loads the course, mapping a missing row to
// utils.ErrCourseNotFound.
func findCourse(ctx context.Context, repo repositories.CourseRepository, courseID string) (*db_models.Course, error) {
	id, err := utils.ParseID(courseID)
	if err != nil {
		return nil, err
	}
	course, err := repo.FindById(ctx, id)
	if err != nil {
		return nil, storageError("find course", err)
	}
	if course == nil {
		return nil, utils.ErrCourseNotFound
	}
	return course, nil
}
