package response_models

import "time"

type PaymentResponse struct {
	PaymentID       string    `json:"payment_id"`
	Status          string    `json:"status"`
	Message         string    `json:"message"`
	TransactionDate time.Time `json:"transaction_date"`
	CourseID        string    `json:"course_id"`
	Amount          float64   `json:"amount"`
}
