// Package store is the persistence layer over the gorm models. Every write
// validates at the boundary and classifies storage failures into the
// ErrValidation / ErrConstraintViolation / ErrNotFound taxonomy.
package store

import "gorm.io/gorm"

// Store wraps the database connection with the entity operations.
type Store struct {
	db *gorm.DB
}

// New returns a Store over the given connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
