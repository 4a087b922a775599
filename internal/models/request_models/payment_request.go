package request_models

type CreatePaymentRequest struct {
	CourseID      string                 `json:"course_id" binding:"required"`
	Amount        float64                `json:"amount" binding:"gte=0"`
	PaymentMethod string                 `json:"payment_method"`
	CardDetails   map[string]interface{} `json:"card_details"`
}
