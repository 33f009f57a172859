package models

import "time"

// LabResults is a dated set of laboratory measurements tied to one record.
// Measurements are optional; precision follows the usual clinical ranges
// (TSH needs three fractional digits, triglycerides can reach four integer
// digits, the cell counts get one).
type LabResults struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	RecordID uint `json:"record_id" gorm:"index;not null"`

	TestDate time.Time `json:"test_date" gorm:"type:date;not null"`

	Creatinine    *float64 `json:"creatinine" gorm:"type:decimal(4,2)"`
	BUN           *float64 `json:"bun" gorm:"type:decimal(4,1)"`
	HemA1c        *float64 `json:"hem_a1c" gorm:"type:decimal(4,2)"`
	LDL           *float64 `json:"ldl" gorm:"type:decimal(5,2)"`
	Triglycerides *float64 `json:"triglycerides" gorm:"type:decimal(6,2)"`
	TSH           *float64 `json:"tsh" gorm:"type:decimal(5,3)"`
	Hematocrit    *float64 `json:"hematocrit" gorm:"type:decimal(4,1)"`
	WBC           *float64 `json:"wbc" gorm:"type:decimal(4,1)"`
	MCV           *float64 `json:"mcv" gorm:"type:decimal(4,1)"`
}

// Validate enforces the storage-level constraints before a write.
func (l *LabResults) Validate() error {
	if l.TestDate.IsZero() {
		return fieldErr("test_date", "is required")
	}
	checks := []struct {
		name             string
		value            *float64
		precision, scale int
	}{
		{"creatinine", l.Creatinine, 4, 2},
		{"bun", l.BUN, 4, 1},
		{"hem_a1c", l.HemA1c, 4, 2},
		{"ldl", l.LDL, 5, 2},
		{"triglycerides", l.Triglycerides, 6, 2},
		{"tsh", l.TSH, 5, 3},
		{"hematocrit", l.Hematocrit, 4, 1},
		{"wbc", l.WBC, 4, 1},
		{"mcv", l.MCV, 4, 1},
	}
	for _, c := range checks {
		if err := checkDecimal(c.name, c.value, c.precision, c.scale); err != nil {
			return err
		}
	}
	return nil
}
