package request_models

type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Grade       string  `json:"grade" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Thumbnail   *string `json:"thumbnail" binding:"omitempty,url"`
}
