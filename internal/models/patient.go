package models

import (
	"time"

	"health-backend/internal/identity"
)

// Patient combines an authenticatable identity with the extended health
// profile. It is the canonical patient entity for administrative use.
type Patient struct {
	ID                uint `json:"id" gorm:"primaryKey"`
	identity.Identity `gorm:"embedded"`

	FirstName string     `json:"first_name" gorm:"size:100"`
	Email     string     `json:"email" gorm:"size:254;uniqueIndex"`
	DOB       *time.Time `json:"dob" gorm:"type:date"`

	HeightIn  *float64 `json:"height_in" gorm:"type:decimal(4,1)"`
	WeightLbs *float64 `json:"weight_lbs" gorm:"type:decimal(5,1)"`
	BMI       *float64 `json:"bmi" gorm:"type:decimal(4,1)"`

	Ethnicity          *string `json:"ethnicity" gorm:"size:100"`
	Race               *string `json:"race" gorm:"size:100"`
	BiologicalSex      *string `json:"biological_sex" gorm:"size:20"`
	CountryOfBirth     *string `json:"country_of_birth" gorm:"size:100"`
	CityOfResidence    *string `json:"city_of_residence" gorm:"size:100"`
	StateOfResidence   *string `json:"state_of_residence" gorm:"size:100"`
	CountryOfResidence *string `json:"country_of_residence" gorm:"size:100"`
	Occupation         *string `json:"occupation" gorm:"size:100"`
	IsRetired          bool    `json:"is_retired" gorm:"default:false"`

	Medications             *string `json:"medications" gorm:"type:text"`
	Allergies               *string `json:"allergies" gorm:"type:text"`
	FamilyMedicalHistory    *string `json:"family_medical_history" gorm:"type:text"`
	PersonalMedicalHistory  *string `json:"personal_medical_history" gorm:"type:text"`
	PersonalSurgicalHistory *string `json:"personal_surgical_history" gorm:"type:text"`

	Groups      []identity.Group      `json:"groups,omitempty" gorm:"many2many:patient_groups"`
	Permissions []identity.Permission `json:"permissions,omitempty" gorm:"many2many:patient_permissions"`

	// Records are ordered by record date; deleting the patient removes them.
	Records []Record `json:"records,omitempty" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// Validate enforces the storage-level constraints before a write. Username
// is required: it backs a unique index, so letting it default to "" would
// make any two patients collide on the empty string.
func (p *Patient) Validate() error {
	if p.Username == "" {
		return fieldErr("username", "is required")
	}
	if p.FirstName == "" {
		return fieldErr("first_name", "is required")
	}
	if p.Email == "" {
		return fieldErr("email", "is required")
	}
	if err := checkMaxLen("username", p.Username, 150); err != nil {
		return err
	}
	if err := checkMaxLen("first_name", p.FirstName, 100); err != nil {
		return err
	}
	if err := checkMaxLen("email", p.Email, 254); err != nil {
		return err
	}
	if err := checkDecimal("height_in", p.HeightIn, 4, 1); err != nil {
		return err
	}
	if err := checkDecimal("weight_lbs", p.WeightLbs, 5, 1); err != nil {
		return err
	}
	if err := checkDecimal("bmi", p.BMI, 4, 1); err != nil {
		return err
	}
	shortFields := []struct {
		name  string
		value *string
		max   int
	}{
		{"ethnicity", p.Ethnicity, 100},
		{"race", p.Race, 100},
		{"biological_sex", p.BiologicalSex, 20},
		{"country_of_birth", p.CountryOfBirth, 100},
		{"city_of_residence", p.CityOfResidence, 100},
		{"state_of_residence", p.StateOfResidence, 100},
		{"country_of_residence", p.CountryOfResidence, 100},
		{"occupation", p.Occupation, 100},
	}
	for _, f := range shortFields {
		if f.value == nil {
			continue
		}
		if err := checkMaxLen(f.name, *f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}
