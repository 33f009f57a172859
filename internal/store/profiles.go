package store

import (
	"context"

	"health-backend/internal/models"
)

// CreateProfile validates and inserts a new profile. Exactly one row is
// written on success; nothing is written on failure.
func (s *Store) CreateProfile(ctx context.Context, profile *models.PatientProfile) error {
	if err := profile.Validate(); err != nil {
		return validationErr(err)
	}
	return classify(s.db.WithContext(ctx).Create(profile).Error)
}

// GetProfile fetches a profile by id.
func (s *Store) GetProfile(ctx context.Context, id uint) (*models.PatientProfile, error) {
	var profile models.PatientProfile
	if err := s.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, classify(err)
	}
	return &profile, nil
}

// ListProfiles returns all profiles, newest first.
func (s *Store) ListProfiles(ctx context.Context) ([]models.PatientProfile, error) {
	var profiles []models.PatientProfile
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&profiles).Error; err != nil {
		return nil, classify(err)
	}
	return profiles, nil
}
