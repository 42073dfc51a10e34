// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"

	"playto/internal/models"

	"gorm.io/gorm"
)

// translateError maps storage-level errors onto the domain taxonomy at the
// repository boundary. Record-not-found becomes NotFound for the given
// resource, duplicate keys become ConstraintViolation, and anything else is
// wrapped as a StorageError. Domain errors pass through untouched.
func translateError(err error, resource string, id interface{}) error {
	if err == nil {
		return nil
	}
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError(resource, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.NewConstraintViolationError(resource + " already exists")
	default:
		return models.NewStorageError(err)
	}
}
