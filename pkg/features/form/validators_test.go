package form

import (
	"fmt"
	"testing"
	"time"
)

type fakeDecimal float64

func (d fakeDecimal) InexactFloat64() float64 { return float64(d) }

func TestRequiredValidator(t *testing.T) {
	v := Required("")

	var nilPtr *int
	empty := []any{"", "   ", nil, nilPtr, time.Time{}, []byte{}}
	for _, value := range empty {
		if err := v.Validate(value); err == nil {
			t.Errorf("Expected error for %#v", value)
		}
	}

	zero := 0
	present := []any{"hello", 0, 0.0, false, &zero, time.Now()}
	for _, value := range present {
		if err := v.Validate(value); err != nil {
			t.Errorf("Expected no error for %#v, got: %v", value, err)
		}
	}
}

func TestRequiredCustomMessage(t *testing.T) {
	err := Required("Name is required").Validate("")
	if err == nil || err.Error() != "Name is required" {
		t.Errorf("got %v", err)
	}
}

func TestMaxLengthValidator(t *testing.T) {
	v := MaxLength(5, "")

	if err := v.Validate("abcde"); err != nil {
		t.Errorf("Expected no error at limit, got: %v", err)
	}
	if err := v.Validate("abcdef"); err == nil {
		t.Error("Expected error for 'abcdef' (len 6)")
	}
}

func TestEmailValidator(t *testing.T) {
	v := Email("")

	valid := []string{
		"test@example.com",
		"user.name@domain.co.uk",
		"user+tag@example.org",
		"a@b.io",
	}
	for _, email := range valid {
		if err := v.Validate(email); err != nil {
			t.Errorf("Expected %q to be valid, got: %v", email, err)
		}
	}

	invalid := []string{
		"notanemail",
		"@example.com",
		"user@",
		"user@domain",
		"user name@example.com",
	}
	for _, email := range invalid {
		if err := v.Validate(email); err == nil {
			t.Errorf("Expected %q to be invalid", email)
		}
	}

	if err := v.Validate(""); err != nil {
		t.Errorf("Empty string should be left to Required, got: %v", err)
	}
}

func TestOneOfValidator(t *testing.T) {
	v := OneOf([]string{"DAILY", "WEEKLY"}, "")

	if err := v.Validate("DAILY"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	err := v.Validate("YEARLY")
	if err == nil || err.Error() != "Must be one of DAILY, WEEKLY" {
		t.Errorf("got %v", err)
	}
	if err := v.Validate(""); err != nil {
		t.Errorf("Empty should be left to Required, got: %v", err)
	}
}

func TestNumericValidator(t *testing.T) {
	v := Numeric("")

	for _, value := range []any{1, 2.5, "3.25", fakeDecimal(4)} {
		if err := v.Validate(value); err != nil {
			t.Errorf("Expected %#v to be numeric, got: %v", value, err)
		}
	}
	for _, value := range []any{"abc", struct{}{}} {
		if err := v.Validate(value); err == nil {
			t.Errorf("Expected %#v to be rejected", value)
		}
	}
}

func TestMinMaxValidators(t *testing.T) {
	tests := []struct {
		name    string
		v       Validator
		value   any
		wantErr bool
	}{
		{"min below", Min(1, ""), 0, true},
		{"min equal", Min(1, ""), 1, false},
		{"max above", Max(52, ""), 53, true},
		{"max equal", Max(52, ""), 52, false},
		{"between inside", Between(0, 40, ""), 12.5, false},
		{"between outside", Between(0, 40, ""), 40.01, true},
		{"between decimal", Between(0, 40, ""), fakeDecimal(41), true},
		{"nonnegative zero", NonNegative(""), 0, false},
		{"nonnegative negative", NonNegative(""), -0.01, true},
		{"nil skipped", Max(1, ""), nil, false},
		{"pointer", Max(1, ""), ptr(2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCustomValidator(t *testing.T) {
	v := Custom(func(value any) error {
		if value == "forbidden" {
			return fmt.Errorf("not allowed")
		}
		return nil
	})

	if err := v.Validate("ok"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if err := v.Validate("forbidden"); err == nil {
		t.Error("Expected error")
	}
}

func TestErrorsCheckStopsAtFirstFailure(t *testing.T) {
	errs := Errors{}
	ok := errs.Check("email", "", Required("required"), Email("bad email"))

	if ok {
		t.Error("Check should report failure")
	}
	if errs["email"] != "required" {
		t.Errorf("errs[email] = %q, want first failing message", errs["email"])
	}
}

func ptr[T any](v T) *T { return &v }
