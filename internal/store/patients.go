package store

import (
	"context"

	"health-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreatePatient validates and inserts a new patient. A duplicate email fails
// with ErrConstraintViolation.
func (s *Store) CreatePatient(ctx context.Context, patient *models.Patient) error {
	if err := patient.Validate(); err != nil {
		return validationErr(err)
	}
	return classify(s.db.WithContext(ctx).Create(patient).Error)
}

// GetPatient fetches a patient by id, including group and permission
// associations.
func (s *Store) GetPatient(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	err := s.db.WithContext(ctx).
		Preload("Groups").
		Preload("Permissions").
		First(&patient, id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &patient, nil
}

// GetPatientByEmail fetches a patient by its unique email.
func (s *Store) GetPatientByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&patient).Error
	if err != nil {
		return nil, classify(err)
	}
	return &patient, nil
}

// UpdatePatient validates and saves an existing patient.
func (s *Store) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	if err := patient.Validate(); err != nil {
		return validationErr(err)
	}
	return classify(s.db.WithContext(ctx).Save(patient).Error)
}

// DeletePatient removes a patient. The foreign keys cascade the delete down
// to records and lab results; the association rows are cleared here since
// join tables are not covered by those constraints.
func (s *Store) DeletePatient(ctx context.Context, id uint) error {
	return classify(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var patient models.Patient
		if err := tx.First(&patient, id).Error; err != nil {
			return err
		}
		return tx.Select(clause.Associations).Delete(&patient).Error
	}))
}

// ListPatients returns all patients ordered by id.
func (s *Store) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.db.WithContext(ctx).Order("id").Find(&patients).Error; err != nil {
		return nil, classify(err)
	}
	return patients, nil
}
