package services

import (
	"fmt"

	"learnlive/internal/models/db_models"
	"learnlive/pkg/utils"
)

// Guard predicates. Each returns nil when the principal may perform the
// operation and a wrapped utils.ErrForbidden or utils.ErrAlreadyEnrolled
// otherwise. Callers evaluate them before any storage mutation.

func CanCreateCourse(p *utils.Principal) error {
	if !p.IsTeacher() {
		return fmt.Errorf("%w: only teachers can create courses", utils.ErrForbidden)
	}
	return nil
}

func CanEnroll(p *utils.Principal, course *db_models.Course) error {
	if !p.IsStudent() {
		return fmt.Errorf("%w: only students can enroll in courses", utils.ErrForbidden)
	}
	if course.HasStudent(p.AccountID) {
		return utils.ErrAlreadyEnrolled
	}
	return nil
}

func CanListEnrolled(p *utils.Principal) error {
	if !p.IsStudent() {
		return fmt.Errorf("%w: only students can view enrolled courses", utils.ErrForbidden)
	}
	return nil
}

// CanManageMaterials holds for the owning teacher only, whatever the role.
func CanManageMaterials(p *utils.Principal, course *db_models.Course) error {
	if !course.OwnedBy(p.AccountID) {
		return fmt.Errorf("%w: only the course teacher can manage its materials", utils.ErrForbidden)
	}
	return nil
}

// CanReadCourseContent covers materials and sessions.
func CanReadCourseContent(p *utils.Principal, course *db_models.Course) error {
	if p.IsTeacher() || course.OwnedBy(p.AccountID) || course.HasStudent(p.AccountID) {
		return nil
	}
	return fmt.Errorf("%w: you must be enrolled in the course to access its content", utils.ErrForbidden)
}

func CanCreateSession(p *utils.Principal, course *db_models.Course) error {
	if !p.IsTeacher() {
		return fmt.Errorf("%w: only teachers can create sessions", utils.ErrForbidden)
	}
	if !course.OwnedBy(p.AccountID) {
		return fmt.Errorf("%w: only the course teacher can schedule its sessions", utils.ErrForbidden)
	}
	return nil
}

func CanUpdateClassLevel(p *utils.Principal) error {
	if !p.IsStudent() {
		return fmt.Errorf("%w: only students can update class level", utils.ErrForbidden)
	}
	return nil
}
