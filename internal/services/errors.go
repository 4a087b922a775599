package services

import (
	"errors"
	"fmt"

	"learnlive/pkg/utils"
)

// storageError keeps sentinel errors produced by the repositories and folds
// everything else into utils.ErrDatabaseError, preserving the cause for logs.
func storageError(op string, err error) error {
	switch {
	case errors.Is(err, utils.ErrMalformedRecord),
		errors.Is(err, utils.ErrDuplicateEmail),
		errors.Is(err, utils.ErrAccountNotFound):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, utils.ErrDatabaseError, err)
	}
}
