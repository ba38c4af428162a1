package model

import (
	"math"
	"strings"
	"testing"
)

func TestValidatePackingInputsAllValid(t *testing.T) {
	errs := ValidatePackingInputs(100, 50, 1.65, 1.0, 10)
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidatePackingInputsUnboundedCap(t *testing.T) {
	if errs := ValidatePackingInputs(100, 50, 1.65, 1.0, 0); len(errs) != 0 {
		t.Errorf("max panels 0 means unbounded and should pass, got %v", errs)
	}
}

func TestValidatePackingInputsAccumulatesAllErrors(t *testing.T) {
	errs := ValidatePackingInputs(-1, 0, math.NaN(), 1.0, -5)
	if len(errs) != 4 {
		t.Fatalf("expected 4 accumulated errors, got %d: %v", len(errs), errs)
	}
	joined := strings.Join(errs, "; ")
	for _, want := range []string{"Land width", "Land height", "Panel width", "Number of panels"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected an error naming %q, got %v", want, errs)
		}
	}
}

func TestValidateEnergyInputs(t *testing.T) {
	if errs := ValidateEnergyInputs(18, 0.8); len(errs) != 0 {
		t.Errorf("expected no errors for valid inputs, got %v", errs)
	}

	errs := ValidateEnergyInputs(0, 1.5)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0], "Panel efficiency") {
		t.Errorf("expected efficiency error first, got %q", errs[0])
	}
	if !strings.Contains(errs[1], "Performance ratio") {
		t.Errorf("expected performance ratio error second, got %q", errs[1])
	}
}

func TestValidateEnergyInputsBoundaries(t *testing.T) {
	// 100% efficiency and a performance ratio of exactly 1 are allowed.
	if errs := ValidateEnergyInputs(100, 1.0); len(errs) != 0 {
		t.Errorf("expected boundary values to pass, got %v", errs)
	}
	if errs := ValidateEnergyInputs(100.1, 1.0); len(errs) != 1 {
		t.Errorf("expected efficiency > 100 to fail, got %v", errs)
	}
}

func TestValidatePositiveNaN(t *testing.T) {
	msg := ValidatePositive("Field", math.NaN())
	if !strings.Contains(msg, "valid number") {
		t.Errorf("NaN should be reported as invalid number, got %q", msg)
	}
}
