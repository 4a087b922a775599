package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"learnlive/internal/models/request_models"
	"learnlive/internal/repositories/repotest"
	"learnlive/internal/services"
	"learnlive/pkg/utils"
)

func TestCreateCourseRequiresTeacher(t *testing.T) {
	store := repotest.NewStore()
	svc := services.NewCourseService(store.Courses(), zap.NewNop())
	ctx := context.Background()

	teacher := newAccount(t, store, "teacher@example.com", utils.RoleTeacher)
	student := newAccount(t, store, "student@example.com", utils.RoleStudent)
	req := request_models.CreateCourseRequest{Title: "Physics", Grade: "10", Price: 20}

	course, err := svc.CreateCourse(ctx, teacher, req)
	require.NoError(t, err)
	assert.Equal(t, teacher.AccountID, course.TeacherID)
	assert.Empty(t, course.Students)

	_, err = svc.CreateCourse(ctx, student, req)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestEnrollTwiceKeepsSingleEntry(t *testing.T) {
	store := repotest.NewStore()
	svc := services.NewCourseService(store.Courses(), zap.NewNop())
	ctx := context.Background()

	teacher := newAccount(t, store, "teacher@example.com", utils.RoleTeacher)
	student := newAccount(t, store, "student@example.com", utils.RoleStudent)
	course := newCourse(t, store, teacher)

	require.NoError(t, svc.Enroll(ctx, student, course.ID.String()))
	assert.ErrorIs(t, svc.Enroll(ctx, student, course.ID.String()), utils.ErrAlreadyEnrolled)

	stored, err := svc.GetCourse(ctx, course.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{student.AccountID.String()}, []string(stored.Students))

	enrolled, err := svc.ListEnrolledCourses(ctx, student)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, course.ID, enrolled[0].ID)
}

func TestEnrollRejectsTeachers(t *testing.T) {
	store := repotest.NewStore()
	svc := services.NewCourseService(store.Courses(), zap.NewNop())

	teacher := newAccount(t, store, "teacher@example.com", utils.RoleTeacher)
	course := newCourse(t, store, teacher)

	err := svc.Enroll(context.Background(), teacher, course.ID.String())
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestGetCourseErrors(t *testing.T) {
	store := repotest.NewStore()
	svc := services.NewCourseService(store.Courses(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.GetCourse(ctx, "not-an-id")
	assert.ErrorIs(t, err, utils.ErrInvalidIdentifier)

	_, err = svc.GetCourse(ctx, "6f1c2a58-7d1e-4c59-9d8a-1d2f3a4b5c6d")
	assert.ErrorIs(t, err, utils.ErrCourseNotFound)

	store.FailWith = errors.New("connection reset")
	_, err = svc.GetCourse(ctx, "6f1c2a58-7d1e-4c59-9d8a-1d2f3a4b5c6d")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestListCoursesFiltersByGrade(t *testing.T) {
	store := repotest.NewStore()
	svc := services.NewCourseService(store.Courses(), zap.NewNop())
	ctx := context.Background()

	teacher := newAccount(t, store, "teacher@example.com", utils.RoleTeacher)
	_, err := svc.CreateCourse(ctx, teacher, request_models.CreateCourseRequest{Title: "A", Grade: "9"})
	require.NoError(t, err)
	_, err = svc.CreateCourse(ctx, teacher, request_models.CreateCourseRequest{Title: "B", Grade: "10"})
	require.NoError(t, err)

	all, err := svc.ListCourses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	ninth, err := svc.ListCourses(ctx, "9")
	require.NoError(t, err)
	require.Len(t, ninth, 1)
	assert.Equal(t, "A", ninth[0].Title)
}
