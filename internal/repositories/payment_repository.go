package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnlive/internal/models/db_models"
	"learnlive/pkg/utils"
)

// MissingEnrollment is a successful student payment whose course does not
// list the payer as a student.
type MissingEnrollment struct {
	PaymentID uuid.UUID
	UserID    uuid.UUID
	CourseID  uuid.UUID
}

type PaymentRepository interface {
	Insert(ctx context.Context, payment *db_models.Payment) error
	ListMissingEnrollments(ctx context.Context) ([]MissingEnrollment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) ListMissingEnrollments(ctx context.Context) ([]MissingEnrollment, error) {
	var rows []MissingEnrollment
	err := r.db.WithContext(ctx).
		Table("payments AS p").
		Select("p.id AS payment_id, p.user_id, p.course_id").
		Joins("JOIN courses c ON c.id = p.course_id").
		Joins("JOIN accounts a ON a.id = p.user_id").
		Where("p.status = ? AND a.role = ?", db_models.PaymentStatusSuccess, utils.RoleStudent).
		Where("NOT (p.user_id::text = ANY(c.students))").
		Order("p.transaction_date ASC").
		Scan(&rows).Error
	return rows, err
}
