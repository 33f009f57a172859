package store

import (
	"context"

	"health-backend/internal/models"
)

// CreateRecord validates and inserts a new medical record for a patient.
func (s *Store) CreateRecord(ctx context.Context, record *models.Record) error {
	if err := record.Validate(); err != nil {
		return validationErr(err)
	}
	return classify(s.db.WithContext(ctx).Create(record).Error)
}

// RecordsForPatient returns a patient's records ordered by record date.
func (s *Store) RecordsForPatient(ctx context.Context, patientID uint) ([]models.Record, error) {
	var records []models.Record
	err := s.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("record_date").
		Find(&records).Error
	if err != nil {
		return nil, classify(err)
	}
	return records, nil
}

// CreateLabResults validates and inserts a lab panel for a record.
func (s *Store) CreateLabResults(ctx context.Context, labs *models.LabResults) error {
	if err := labs.Validate(); err != nil {
		return validationErr(err)
	}
	return classify(s.db.WithContext(ctx).Create(labs).Error)
}

// LabResultsForRecord returns a record's lab panels ordered by test date.
func (s *Store) LabResultsForRecord(ctx context.Context, recordID uint) ([]models.LabResults, error) {
	var labs []models.LabResults
	err := s.db.WithContext(ctx).
		Where("record_id = ?", recordID).
		Order("test_date").
		Find(&labs).Error
	if err != nil {
		return nil, classify(err)
	}
	return labs, nil
}
