package request_models

// LoginForm is the OAuth2 password-grant form posted to /token. The username
// field carries the account email.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type SignUpRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	Role       string  `json:"role" binding:"required,oneof=teacher student"`
	Password   string  `json:"password" binding:"required,min=6,max=72"`
	ClassLevel *string `json:"class_level"`
}

type UpdateClassLevelRequest struct {
	ClassLevel string `json:"class_level" binding:"required"`
}
