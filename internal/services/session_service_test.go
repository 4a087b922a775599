package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"learnlive/internal/models/request_models"
	"learnlive/internal/repositories/repotest"
	"learnlive/internal/services"
	"learnlive/pkg/utils"
)

func sessionRequest(courseID, date, clock string) request_models.CreateSessionRequest {
	return request_models.CreateSessionRequest{
		Title:    "Live Q&A",
		CourseID: courseID,
		Date:     date,
		Time:     clock,
		Duration: 45,
	}
}

func TestCreateSessionRequiresCourseOwner(t *testing.T) {
	store := repotest.NewStore()
	svc := services.NewSessionService(store.Sessions(), store.Courses(), zap.NewNop())
	ctx := context.Background()

	owner := newAccount(t, store, "owner@example.com", utils.RoleTeacher)
	other := newAccount(t, store, "other@example.com", utils.RoleTeacher)
	course := newCourse(t, store, owner)

	_, err := svc.CreateSession(ctx, other, sessionRequest(course.ID.String(), "2030-01-12", "10:00"))
	assert.ErrorIs(t, err, utils.ErrForbidden)

	session, err := svc.CreateSession(ctx, owner, sessionRequest(course.ID.String(), "2030-01-12", "10:00"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(session.MeetingLink, "https://meet.jit.si/learnlive-session-"))
	assert.Equal(t, owner.Name, session.Teacher)
	assert.Empty(t, session.Attendees)
}

func TestListUpcomingSessions(t *testing.T) {
	store := repotest.NewStore()
	now := time.Date(2030, 1, 10, 15, 0, 0, 0, time.UTC)
	svc := services.NewSessionService(store.Sessions(), store.Courses(), zap.NewNop()).
		WithClock(func() time.Time { return now })
	courses := services.NewCourseService(store.Courses(), zap.NewNop())
	ctx := context.Background()

	owner := newAccount(t, store, "owner@example.com", utils.RoleTeacher)
	student := newAccount(t, store, "student@example.com", utils.RoleStudent)
	enrolledCourse := newCourse(t, store, owner)
	otherCourse := newCourse(t, store, owner)
	require.NoError(t, courses.Enroll(ctx, student, enrolledCourse.ID.String()))

	for _, req := range []request_models.CreateSessionRequest{
		sessionRequest(enrolledCourse.ID.String(), "2030-01-09", "09:00"),
		sessionRequest(enrolledCourse.ID.String(), "2030-01-12", "08:00"),
		sessionRequest(enrolledCourse.ID.String(), "2030-01-10", "18:00"),
		sessionRequest(otherCourse.ID.String(), "2030-01-11", "09:00"),
	} {
		_, err := svc.CreateSession(ctx, owner, req)
		require.NoError(t, err)
	}

	forStudent, err := svc.ListUpcoming(ctx, student)
	require.NoError(t, err)
	require.Len(t, forStudent, 2)
	assert.Equal(t, "2030-01-10", forStudent[0].Date)
	assert.Equal(t, "2030-01-12", forStudent[1].Date)

	forTeacher, err := svc.ListUpcoming(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, forTeacher, 3)
}

func TestGetSessionRequiresEnrollment(t *testing.T) {
	store := repotest.NewStore()
	svc := services.NewSessionService(store.Sessions(), store.Courses(), zap.NewNop())
	courses := services.NewCourseService(store.Courses(), zap.NewNop())
	ctx := context.Background()

	owner := newAccount(t, store, "owner@example.com", utils.RoleTeacher)
	student := newAccount(t, store, "student@example.com", utils.RoleStudent)
	course := newCourse(t, store, owner)

	session, err := svc.CreateSession(ctx, owner, sessionRequest(course.ID.String(), "2030-01-12", "10:00"))
	require.NoError(t, err)

	_, err = svc.GetSession(ctx, student, session.ID.String())
	assert.ErrorIs(t, err, utils.ErrForbidden)

	require.NoError(t, courses.Enroll(ctx, student, course.ID.String()))
	got, err := svc.GetSession(ctx, student, session.ID.String())
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = svc.GetSession(ctx, student, "6f1c2a58-7d1e-4c59-9d8a-1d2f3a4b5c6d")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}
