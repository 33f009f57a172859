package models

import (
	"strings"
	"time"
)

// MaxNotesLen is the length the notes field is truncated to on write.
const MaxNotesLen = 1000

// PatientProfile defines the simple demographic profile created through the
// public API. The extended Patient schema supersedes it for administrative
// data; this shape remains the creation endpoint's target.
type PatientProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"size:100"`
	LastName  string    `json:"last_name" gorm:"size:100"`
	Age       *int      `json:"age"`
	HeightCm  *float64  `json:"height_cm" gorm:"type:decimal(6,2)"`
	WeightKg  *float64  `json:"weight_kg" gorm:"type:decimal(6,2)"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;<-:create"`
}

func (PatientProfile) TableName() string {
	return "health_profiles"
}

// DisplayName returns the human-readable label for the profile.
func (p *PatientProfile) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Validate enforces the storage-level constraints before a write.
func (p *PatientProfile) Validate() error {
	if err := checkMaxLen("first_name", p.FirstName, 100); err != nil {
		return err
	}
	if err := checkMaxLen("last_name", p.LastName, 100); err != nil {
		return err
	}
	if p.Age != nil && *p.Age < 0 {
		return fieldErr("age", "must be non-negative")
	}
	if err := checkDecimal("height_cm", p.HeightCm, 6, 2); err != nil {
		return err
	}
	if err := checkDecimal("weight_kg", p.WeightKg, 6, 2); err != nil {
		return err
	}
	if len([]rune(p.Notes)) > MaxNotesLen {
		return fieldErr("notes", "exceeds 1000 characters")
	}
	return nil
}
