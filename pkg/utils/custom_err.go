package utils

import "errors"

var (
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrBadCredentials  = errors.New("incorrect email or password")
	ErrAccountNotFound = errors.New("account not found")

	ErrInvalidToken   = errors.New("could not validate credentials")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is malformed")

	ErrForbidden        = errors.New("forbidden")
	ErrAlreadyEnrolled  = errors.New("already enrolled in this course")
	ErrCourseNotFound   = errors.New("course not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrMaterialNotFound = errors.New("material not found")

	ErrInvalidIdentifier = errors.New("invalid identifier format")
	ErrInvalidUpload     = errors.New("invalid upload")
	ErrPasswordTooLong   = errors.New("password must be at most 72 bytes")
	ErrUploadFailure     = errors.New("upload failed")

	ErrMalformedRecord = errors.New("malformed record")
	ErrDatabaseError   = errors.New("database error")
)
