package validation

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name   string `validate:"required"`
	Email  string `validate:"omitempty,email"`
	Amount int64  `validate:"min=1"`
	Status string `validate:"omitempty,oneof=ACTIVE SUSPENDED"`
}

func TestStructValid(t *testing.T) {
	err := Struct(&sample{Name: "Library Fee", Amount: 50000})
	if err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}
}

func TestStructCollectsAllFailures(t *testing.T) {
	err := Struct(&sample{Email: "not-an-email", Status: "GONE"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected Errors, got %T", err)
	}
	if len(verrs) != 4 {
		t.Fatalf("expected 4 failures, got %d: %v", len(verrs), verrs)
	}
}

func TestStructErrorMessages(t *testing.T) {
	err := Struct(&sample{Email: "nope", Amount: 5, Name: "x"})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if !strings.Contains(err.Error(), "must be a valid email address") {
		t.Errorf("unexpected message: %v", err)
	}
	if !strings.Contains(err.Error(), "Email") {
		t.Errorf("field name missing from message: %v", err)
	}
}
