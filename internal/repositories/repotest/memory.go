// Package repotest provides in-memory implementations of the repository
// interfaces for tests. They keep the same set semantics as the PostgreSQL
// implementations: unique emails and at most one entry per student in a
// course's student set.
package repotest

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"learnlive/internal/models/db_models"
	"learnlive/internal/repositories"
	"learnlive/pkg/utils"
)

type Store struct {
	mu sync.Mutex

	accounts  []*db_models.Account
	courses   []*db_models.Course
	sessions  []*db_models.Session
	materials []*db_models.CourseMaterial
	payments  []*db_models.Payment

	// FailWith, when set, is returned by every repository call.
	FailWith error
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Accounts() repositories.AccountRepository   { return accountRepo{s} }
func (s *Store) Courses() repositories.CourseRepository     { return courseRepo{s} }
func (s *Store) Sessions() repositories.SessionRepository   { return sessionRepo{s} }
func (s *Store) Materials() repositories.MaterialRepository { return materialRepo{s} }
func (s *Store) Payments() repositories.PaymentRepository   { return paymentRepo{s} }

// PaymentCount reports how many payment records were written.
func (s *Store) PaymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

// ForceCourseStudents overwrites a course's student set, bypassing the
// enrollment path. Used to simulate a crash between payment and enrollment.
func (s *Store) ForceCourseStudents(courseID uuid.UUID, students []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID == courseID {
			c.Students = slices.Clone(students)
		}
	}
}

func stamp(base *db_models.BaseModel) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = time.Now().UTC()
	}
}

type accountRepo struct{ s *Store }

func (r accountRepo) Insert(_ context.Context, account *db_models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	for _, a := range r.s.accounts {
		if a.Email == account.Email {
			return utils.ErrDuplicateEmail
		}
	}
	stamp(&account.BaseModel)
	cp := *account
	r.s.accounts = append(r.s.accounts, &cp)
	return nil
}

func (r accountRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	for _, a := range r.s.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r accountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	for _, a := range r.s.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r accountRepo) UpdateClassLevel(_ context.Context, id uuid.UUID, classLevel string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	for _, a := range r.s.accounts {
		if a.ID == id {
			level := classLevel
			a.ClassLevel = &level
			return nil
		}
	}
	return utils.ErrAccountNotFound
}

type courseRepo struct{ s *Store }

func copyCourse(c *db_models.Course) db_models.Course {
	cp := *c
	cp.Students = slices.Clone(c.Students)
	if cp.Students == nil {
		cp.Students = []string{}
	}
	return cp
}

func (r courseRepo) Insert(_ context.Context, course *db_models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	stamp(&course.BaseModel)
	cp := copyCourse(course)
	r.s.courses = append(r.s.courses, &cp)
	return nil
}

func (r courseRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	for _, c := range r.s.courses {
		if c.ID == id {
			cp := copyCourse(c)
			if err := cp.AfterFind(nil); err != nil {
				return nil, err
			}
			return &cp, nil
		}
	}
	return nil, nil
}

func (r courseRepo) List(_ context.Context, grade string) ([]db_models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := []db_models.Course{}
	for _, c := range r.s.courses {
		if grade == "" || c.Grade == grade {
			out = append(out, copyCourse(c))
		}
	}
	return out, nil
}

func (r courseRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]db_models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := []db_models.Course{}
	for _, c := range r.s.courses {
		if c.HasStudent(studentID) {
			out = append(out, copyCourse(c))
		}
	}
	return out, nil
}

func (r courseRepo) AddStudent(_ context.Context, courseID, studentID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return false, r.s.FailWith
	}
	for _, c := range r.s.courses {
		if c.ID != courseID {
			continue
		}
		if c.HasStudent(studentID) {
			return false, nil
		}
		c.Students = append(c.Students, studentID.String())
		return true, nil
	}
	return false, nil
}

type sessionRepo struct{ s *Store }

func copySession(sess *db_models.Session) db_models.Session {
	cp := *sess
	cp.Attendees = slices.Clone(sess.Attendees)
	if cp.Attendees == nil {
		cp.Attendees = []string{}
	}
	return cp
}

func (r sessionRepo) Insert(_ context.Context, session *db_models.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	stamp(&session.BaseModel)
	cp := copySession(session)
	r.s.sessions = append(r.s.sessions, &cp)
	return nil
}

func (r sessionRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	for _, sess := range r.s.sessions {
		if sess.ID == id {
			cp := copySession(sess)
			return &cp, nil
		}
	}
	return nil, nil
}

func (r sessionRepo) upcoming(match func(*db_models.Session) bool, fromDate string) []db_models.Session {
	out := []db_models.Session{}
	for _, sess := range r.s.sessions {
		if sess.Date >= fromDate && match(sess) {
			out = append(out, copySession(sess))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

func (r sessionRepo) ListUpcomingByTeacher(_ context.Context, teacherID uuid.UUID, fromDate string) ([]db_models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	return r.upcoming(func(sess *db_models.Session) bool {
		return sess.TeacherID == teacherID
	}, fromDate), nil
}

func (r sessionRepo) ListUpcomingByCourses(_ context.Context, courseIDs []uuid.UUID, fromDate string) ([]db_models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	return r.upcoming(func(sess *db_models.Session) bool {
		return slices.Contains(courseIDs, sess.CourseID)
	}, fromDate), nil
}

type materialRepo struct{ s *Store }

func (r materialRepo) Insert(_ context.Context, material *db_models.CourseMaterial) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	stamp(&material.BaseModel)
	cp := *material
	r.s.materials = append(r.s.materials, &cp)
	return nil
}

func (r materialRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.CourseMaterial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	for _, m := range r.s.materials {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r materialRepo) ListByCourse(_ context.Context, courseID uuid.UUID) ([]db_models.CourseMaterial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := []db_models.CourseMaterial{}
	for i := len(r.s.materials) - 1; i >= 0; i-- {
		if r.s.materials[i].CourseID == courseID {
			out = append(out, *r.s.materials[i])
		}
	}
	return out, nil
}

func (r materialRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	r.s.materials = slices.DeleteFunc(r.s.materials, func(m *db_models.CourseMaterial) bool {
		return m.ID == id
	})
	return nil
}

type paymentRepo struct{ s *Store }

func (r paymentRepo) Insert(_ context.Context, payment *db_models.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	cp := *payment
	r.s.payments = append(r.s.payments, &cp)
	return nil
}

func (r paymentRepo) ListMissingEnrollments(_ context.Context) ([]repositories.MissingEnrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}

	role := make(map[uuid.UUID]string, len(r.s.accounts))
	for _, a := range r.s.accounts {
		role[a.ID] = a.Role
	}

	out := []repositories.MissingEnrollment{}
	for _, p := range r.s.payments {
		if p.Status != db_models.PaymentStatusSuccess || role[p.UserID] != utils.RoleStudent {
			continue
		}
		for _, c := range r.s.courses {
			if c.ID == p.CourseID && !c.HasStudent(p.UserID) {
				out = append(out, repositories.MissingEnrollment{
					PaymentID: p.ID,
					UserID:    p.UserID,
					CourseID:  p.CourseID,
				})
			}
		}
	}
	return out, nil
}
