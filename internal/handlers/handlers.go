package handlers

import (
	"context"

	"health-backend/internal/models"

	"github.com/rs/zerolog"
)

// ProfileStore is the slice of the persistence layer the HTTP handlers use.
type ProfileStore interface {
	CreateProfile(ctx context.Context, profile *models.PatientProfile) error
	GetProfile(ctx context.Context, id uint) (*models.PatientProfile, error)
	ListProfiles(ctx context.Context) ([]models.PatientProfile, error)
}

// Handler bundles the HTTP handlers with their dependencies.
type Handler struct {
	store     ProfileStore
	log       zerolog.Logger
	staticDir string
}

// New returns a Handler backed by the given store.
func New(store ProfileStore, log zerolog.Logger, staticDir string) *Handler {
	return &Handler{store: store, log: log, staticDir: staticDir}
}
