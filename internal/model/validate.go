package model

import (
	"fmt"
	"math"
)

// Validation helpers accumulate one human-readable message per violated
// field instead of failing on the first problem, so a caller can surface
// everything wrong with a form or flag set at once.

// ValidatePositive returns a message when v is not a positive finite number.
// An empty string means the value is acceptable.
func ValidatePositive(field string, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%s must be a valid number", field)
	}
	if v <= 0 {
		return fmt.Sprintf("%s must be positive", field)
	}
	return ""
}

// ValidatePercentage returns a message when v is outside (0, 100].
func ValidatePercentage(field string, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%s must be a valid number", field)
	}
	if v <= 0 || v > 100 {
		return fmt.Sprintf("%s must be between 0 and 100", field)
	}
	return ""
}

// ValidateRatio returns a message when v is outside (0, 1].
func ValidateRatio(field string, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%s must be a valid number", field)
	}
	if v <= 0 || v > 1 {
		return fmt.Sprintf("%s must be between 0 and 1", field)
	}
	return ""
}

// ValidatePackingInputs checks the land and panel dimensions plus the
// optional panel cap. maxPanels of 0 means "fill as many as fit" and is
// always acceptable; negative values are rejected.
func ValidatePackingInputs(landWidthM, landHeightM, panelWidthM, panelHeightM float64, maxPanels int) []string {
	var errs []string
	checks := []struct {
		field string
		value float64
	}{
		{"Land width", landWidthM},
		{"Land height", landHeightM},
		{"Panel width", panelWidthM},
		{"Panel height", panelHeightM},
	}
	for _, c := range checks {
		if msg := ValidatePositive(c.field, c.value); msg != "" {
			errs = append(errs, msg)
		}
	}
	if maxPanels < 0 {
		errs = append(errs, "Number of panels must be positive")
	}
	return errs
}

// ValidateEnergyInputs checks the energy calculation parameters.
// Efficiency is entered as a percentage, the performance ratio as a fraction.
func ValidateEnergyInputs(efficiencyPercent, performanceRatio float64) []string {
	var errs []string
	if msg := ValidatePercentage("Panel efficiency", efficiencyPercent); msg != "" {
		errs = append(errs, msg)
	}
	if msg := ValidateRatio("Performance ratio", performanceRatio); msg != "" {
		errs = append(errs, msg)
	}
	return errs
}
