package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Storage failures are classified into a small taxonomy so the HTTP layer can
// pick a status without inspecting driver errors.
var (
	ErrValidation          = errors.New("validation error")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrNotFound            = errors.New("not found")
)

// classify maps a gorm/driver error onto the store taxonomy. Unrecognized
// errors pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return err
}

func validationErr(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
