package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"learnlive/internal/models/db_models"
	"learnlive/internal/services"
	"learnlive/pkg/utils"
)

func TestGuards(t *testing.T) {
	owner := &utils.Principal{AccountID: uuid.New(), Role: utils.RoleTeacher}
	otherTeacher := &utils.Principal{AccountID: uuid.New(), Role: utils.RoleTeacher}
	enrolled := &utils.Principal{AccountID: uuid.New(), Role: utils.RoleStudent}
	outsider := &utils.Principal{AccountID: uuid.New(), Role: utils.RoleStudent}

	course := &db_models.Course{TeacherID: owner.AccountID, Students: []string{enrolled.AccountID.String()}}

	t.Run("create course", func(t *testing.T) {
		assert.NoError(t, services.CanCreateCourse(owner))
		assert.ErrorIs(t, services.CanCreateCourse(outsider), utils.ErrForbidden)
	})

	t.Run("enroll", func(t *testing.T) {
		assert.NoError(t, services.CanEnroll(outsider, course))
		assert.ErrorIs(t, services.CanEnroll(enrolled, course), utils.ErrAlreadyEnrolled)
		assert.ErrorIs(t, services.CanEnroll(owner, course), utils.ErrForbidden)
	})

	t.Run("manage materials", func(t *testing.T) {
		assert.NoError(t, services.CanManageMaterials(owner, course))
		assert.ErrorIs(t, services.CanManageMaterials(otherTeacher, course), utils.ErrForbidden)
		assert.ErrorIs(t, services.CanManageMaterials(enrolled, course), utils.ErrForbidden)
	})

	t.Run("read content", func(t *testing.T) {
		assert.NoError(t, services.CanReadCourseContent(owner, course))
		assert.NoError(t, services.CanReadCourseContent(otherTeacher, course))
		assert.NoError(t, services.CanReadCourseContent(enrolled, course))
		assert.ErrorIs(t, services.CanReadCourseContent(outsider, course), utils.ErrForbidden)
	})

	t.Run("create session", func(t *testing.T) {
		assert.NoError(t, services.CanCreateSession(owner, course))
		assert.ErrorIs(t, services.CanCreateSession(otherTeacher, course), utils.ErrForbidden)
		assert.ErrorIs(t, services.CanCreateSession(enrolled, course), utils.ErrForbidden)
	})

	t.Run("class level", func(t *testing.T) {
		assert.NoError(t, services.CanUpdateClassLevel(enrolled))
		assert.ErrorIs(t, services.CanUpdateClassLevel(owner), utils.ErrForbidden)
	})

	t.Run("enrolled list", func(t *testing.T) {
		assert.NoError(t, services.CanListEnrolled(outsider))
		assert.ErrorIs(t, services.CanListEnrolled(owner), utils.ErrForbidden)
	})
}
