package request_models

// CreateMaterialRequest is bound from a multipart form; the optional file part
// is read separately.
type CreateMaterialRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Type        string `form:"type" binding:"required"`
	Content     string `form:"content"`
	ExternalURL string `form:"external_url" binding:"omitempty,url"`
}
