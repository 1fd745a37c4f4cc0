package service

import (
	"errors"

	"jobhunter/internal/apperr"

	"gorm.io/gorm"
)

// notFound turns a missing row into a not-found error naming what was
// looked up. Other errors pass through.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s not found", what)
	}
	return err
}

// requireDeleted reports a delete that matched no row as not found.
func requireDeleted(rows int64, err error, what string) error {
	if err != nil {
		return notFound(err, what)
	}
	if rows == 0 {
		return apperr.NotFound("%s not found", what)
	}
	return nil
}
