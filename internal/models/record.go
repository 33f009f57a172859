package models

import "time"

// Record is a dated snapshot of a patient's medical status.
type Record struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	PatientID uint `json:"patient_id" gorm:"index;not null"`

	RecordDate time.Time `json:"record_date" gorm:"type:date;not null;index"`

	BP                   *string `json:"bp" gorm:"type:text"`
	Medications          *string `json:"medications" gorm:"type:text"`
	Allergies            *string `json:"allergies" gorm:"type:text"`
	NewMedicalConditions *string `json:"new_medical_conditions" gorm:"type:text"`
	NewSurgeries         *string `json:"new_surgeries" gorm:"type:text"`

	MonthlyAvgSteps      *int     `json:"monthly_avg_steps"`
	MonthlyAvgSleepHours *float64 `json:"monthly_avg_sleep_hours" gorm:"type:decimal(4,2)"`

	// Lab results are removed with the record.
	LabResults []LabResults `json:"lab_results,omitempty" gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`
}

// Validate enforces the storage-level constraints before a write.
func (r *Record) Validate() error {
	if r.RecordDate.IsZero() {
		return fieldErr("record_date", "is required")
	}
	return checkDecimal("monthly_avg_sleep_hours", r.MonthlyAvgSleepHours, 4, 2)
}
