package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"learnlive/internal/models/db_models"
	"learnlive/internal/models/request_models"
	"learnlive/internal/models/response_models"
	"learnlive/internal/repositories"
	"learnlive/pkg/utils"
)

const defaultPaymentMethod = "card"

type PaymentService interface {
	// ProcessPayment records a successful payment and enrolls a paying
	// student. There is no gateway: every payment for an existing course
	// succeeds.
	ProcessPayment(ctx context.Context, principal *utils.Principal, request request_models.CreatePaymentRequest) (*response_models.PaymentResponse, error)
	// ReconcileEnrollments enrolls every student holding a successful
	// payment for a course that does not list them. Safe to run repeatedly.
	ReconcileEnrollments(ctx context.Context) (int, error)
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	courseRepo  repositories.CourseRepository
	now         func() time.Time
	logger      *zap.Logger
}

func NewPaymentService(paymentRepo repositories.PaymentRepository, courseRepo repositories.CourseRepository, logger *zap.Logger) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		courseRepo:  courseRepo,
		now:         utils.NowUTC,
		logger:      logger.Named("payment"),
	}
}

func (p *paymentService) ProcessPayment(ctx context.Context, principal *utils.Principal, request request_models.CreatePaymentRequest) (*response_models.PaymentResponse, error) {
	course, err := findCourse(ctx, p.courseRepo, request.CourseID)
	if err != nil {
		return nil, err
	}

	method := request.PaymentMethod
	if method == "" {
		method = defaultPaymentMethod
	}

	payment := &db_models.Payment{
		ID:              uuid.New(),
		UserID:          principal.AccountID,
		CourseID:        course.ID,
		Amount:          request.Amount,
		Status:          db_models.PaymentStatusSuccess,
		PaymentMethod:   method,
		Metadata:        paymentMetadata(request.CardDetails),
		TransactionDate: p.now(),
	}
	if err := p.paymentRepo.Insert(ctx, payment); err != nil {
		return nil, storageError("insert payment", err)
	}

	if principal.IsStudent() && !course.HasStudent(principal.AccountID) {
		added, err := p.courseRepo.AddStudent(ctx, course.ID, principal.AccountID)
		if err != nil {
			// the payment stands; the reconciliation sweep retries the enrollment
			p.logger.Error("enrollment after payment failed",
				zap.String("payment_id", payment.ID.String()),
				zap.Error(err))
		} else if added {
			p.logger.Info("student enrolled by payment",
				zap.String("course_id", course.ID.String()),
				zap.String("student_id", principal.AccountID.String()))
		}
	}

	return &response_models.PaymentResponse{
		PaymentID:       payment.ID.String(),
		Status:          string(payment.Status),
		Message:         "Payment processed successfully",
		TransactionDate: payment.TransactionDate,
		CourseID:        course.ID.String(),
		Amount:          payment.Amount,
	}, nil
}

func (p *paymentService) ReconcileEnrollments(ctx context.Context) (int, error) {
	missing, err := p.paymentRepo.ListMissingEnrollments(ctx)
	if err != nil {
		return 0, storageError("list missing enrollments", err)
	}

	repaired := 0
	for _, m := range missing {
		added, err := p.courseRepo.AddStudent(ctx, m.CourseID, m.UserID)
		if err != nil {
			return repaired, storageError("reconcile enrollment", err)
		}
		if added {
			repaired++
			p.logger.Info("enrollment reconciled",
				zap.String("payment_id", m.PaymentID.String()),
				zap.String("course_id", m.CourseID.String()),
				zap.String("student_id", m.UserID.String()))
		}
	}
	return repaired, nil
}

// paymentMetadata keeps only non-sensitive card hints.
func paymentMetadata(card map[string]interface{}) datatypes.JSON {
	meta := map[string]interface{}{}
	if last4, ok := cardLast4(card); ok {
		meta["card_last4"] = last4
	}
	if brand, ok := card["brand"].(string); ok && brand != "" {
		meta["card_brand"] = brand
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(raw)
}

func cardLast4(card map[string]interface{}) (string, bool) {
	for _, key := range []string{"card_number", "number"} {
		if digits := onlyDigits(cardNumberText(card[key])); len(digits) >= 4 {
			return digits[len(digits)-4:], true
		}
	}
	return "", false
}

// cardNumberText renders a decoded JSON value without exponent notation.
func cardNumberText(v interface{}) string {
	switch n := v.(type) {
	case string:
		return n
	case json.Number:
		return n.String()
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return ""
	}
}

func onlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
