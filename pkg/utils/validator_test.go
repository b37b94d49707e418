package utils

import (
	"strings"
	"testing"
)

type validatedInput struct {
	Name string  `validate:"required,max=10"`
	Age  int     `validate:"required,gte=1,lte=150"`
	Rate float64 `validate:"gte=0,lte=10"`
}

func TestValidateStruct(t *testing.T) {
	if errs := ValidateStruct(validatedInput{Name: "Ada", Age: 30, Rate: 9.5}); errs != nil {
		t.Fatalf("expected no errors for valid input, got %v", errs)
	}

	errs := ValidateStruct(validatedInput{Age: 200, Rate: 10.5})
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}
	if errs["Name"] != "This field is required" {
		t.Errorf("unexpected Name message: %q", errs["Name"])
	}
	if errs["Age"] != "Must be at most 150" {
		t.Errorf("unexpected Age message: %q", errs["Age"])
	}
	if errs["Rate"] != "Must be at most 10" {
		t.Errorf("unexpected Rate message: %q", errs["Rate"])
	}
}

func TestFormatValidationErrors(t *testing.T) {
	if got := FormatValidationErrors(map[string]string{"Name": "This field is required"}); got != "Name: This field is required" {
		t.Errorf("unexpected single-entry format: %q", got)
	}

	got := FormatValidationErrors(map[string]string{
		"Name": "This field is required",
		"Age":  "Must be at least 1",
	})
	parts := strings.Split(got, "; ")
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %q", got)
	}
	seen := map[string]bool{}
	for _, p := range parts {
		seen[p] = true
	}
	if !seen["Name: This field is required"] || !seen["Age: Must be at least 1"] {
		t.Errorf("unexpected parts: %q", got)
	}
}
