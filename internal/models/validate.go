package models

import (
	"fmt"
	"math"
)

// fieldErr builds a validation error naming the offending field.
func fieldErr(field, msg string) error {
	return fmt.Errorf("%s %s", field, msg)
}

func checkMaxLen(field, value string, max int) error {
	if len([]rune(value)) > max {
		return fieldErr(field, fmt.Sprintf("exceeds %d characters", max))
	}
	return nil
}

// checkDecimal verifies that a value fits decimal(precision, scale): at most
// precision-scale integer digits and at most scale fractional digits.
func checkDecimal(field string, value *float64, precision, scale int) error {
	if value == nil {
		return nil
	}
	v := *value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fieldErr(field, "is not a finite number")
	}
	if math.Abs(v) >= math.Pow(10, float64(precision-scale)) {
		return fieldErr(field, fmt.Sprintf("exceeds decimal(%d,%d)", precision, scale))
	}
	scaled := v * math.Pow(10, float64(scale))
	if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
		return fieldErr(field, fmt.Sprintf("has more than %d decimal places", scale))
	}
	return nil
}
