package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const PaymentStatusSuccess PaymentStatus = "success"

// Payment is an append-only audit record.
type Payment struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `gorm:"type:uuid;index;not null"`
	CourseID        uuid.UUID      `gorm:"type:uuid;not null"`
	Amount          float64        `gorm:"not null"`
	Status          PaymentStatus  `gorm:"index;not null"`
	PaymentMethod   string         `gorm:"not null"`
	Metadata        datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	TransactionDate time.Time      `gorm:"not null"`
}
