package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learnlive/pkg/utils"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

const addStudentSQL = `UPDATE "courses" SET "students"=array_append\(students, ?\$1\) WHERE id = \$2 AND NOT \(\$3 = ANY\(students\)\)`

func TestAddStudentAppendsOnlyWhenAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCourseRepository(db)
	courseID, studentID := uuid.New(), uuid.New()
	sid := studentID.String()

	mock.ExpectExec(addStudentSQL).
		WithArgs(sid, courseID.String(), sid).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(addStudentSQL).
		WithArgs(sid, courseID.String(), sid).
		WillReturnResult(sqlmock.NewResult(0, 0))

	added, err := repo.AddStudent(context.Background(), courseID, studentID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.AddStudent(context.Background(), courseID, studentID)
	require.NoError(t, err)
	assert.False(t, added, "student already listed or course missing")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddStudentReturnsStorageError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCourseRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectExec(addStudentSQL).WillReturnError(boom)

	added, err := repo.AddStudent(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, boom)
	assert.False(t, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMissingEnrollmentsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)
	paymentID, userID, courseID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT p\.id AS payment_id, p\.user_id, p\.course_id FROM payments AS p ` +
		`JOIN courses c ON c\.id = p\.course_id JOIN accounts a ON a\.id = p\.user_id ` +
		`WHERE .*p\.status = \$1 AND a\.role = \$2.*NOT \(p\.user_id::text = ANY\(c\.students\)\).* ` +
		`ORDER BY p\.transaction_date ASC`).
		WithArgs("success", utils.RoleStudent).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "user_id", "course_id"}).
			AddRow(paymentID.String(), userID.String(), courseID.String()))

	missing, err := repo.ListMissingEnrollments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []MissingEnrollment{{PaymentID: paymentID, UserID: userID, CourseID: courseID}}, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCourseRejectsMalformedStudentSet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCourseRepository(db)
	courseID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "students"}).
			AddRow(courseID.String(), "Algebra I", "{not-a-uuid}"))

	course, err := repo.FindById(context.Background(), courseID)
	assert.ErrorIs(t, err, utils.ErrMalformedRecord)
	assert.Nil(t, course)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCourseMissingIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCourseRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	course, err := repo.FindById(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, course)
	assert.NoError(t, mock.ExpectationsWereMet())
}
