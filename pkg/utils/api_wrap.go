package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	if code == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// StatusFor maps a service error onto the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadCredentials),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenMalformed):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrCourseNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrMaterialNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrAlreadyEnrolled),
		errors.Is(err, ErrInvalidIdentifier),
		errors.Is(err, ErrInvalidUpload),
		errors.Is(err, ErrPasswordTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func HandleServiceError(c *gin.Context, err error) {
	code := StatusFor(err)
	if code < http.StatusInternalServerError {
		RespondError(c, code, messageFor(err))
		return
	}

	logger := LoggerFrom(c)
	logger.Error("request failed",
		zap.String("trace_id", traceID(c)),
		zap.String("path", c.FullPath()),
		zap.Error(err))

	switch {
	case errors.Is(err, ErrUploadFailure):
		RespondError(c, code, "Failed to store uploaded file")
	default:
		RespondError(c, code, "Internal server error")
	}
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, ErrBadCredentials):
		return "Incorrect email or password"
	case errors.Is(err, ErrTokenExpired), errors.Is(err, ErrTokenMalformed), errors.Is(err, ErrInvalidToken):
		return "Could not validate credentials"
	case errors.Is(err, ErrDuplicateEmail):
		return "Email already registered"
	case errors.Is(err, ErrAlreadyEnrolled):
		return "Already enrolled in this course"
	case errors.Is(err, ErrCourseNotFound):
		return "Course not found"
	case errors.Is(err, ErrSessionNotFound):
		return "Session not found"
	case errors.Is(err, ErrMaterialNotFound):
		return "Material not found"
	case errors.Is(err, ErrAccountNotFound):
		return "Account not found"
	}
	// forbidden, invalid identifier and invalid upload carry their detail in the wrap chain
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return fmt.Sprintf("%c%s", s[0]-'a'+'A', s[1:])
}

// LoggerFrom returns the request scoped logger installed by the logging middleware.
func LoggerFrom(c *gin.Context) *zap.Logger {
	if v, ok := c.Get("logger"); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}
