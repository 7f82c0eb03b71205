package repository

import (
	"errors"
	"fmt"
	"testing"
)

func TestContactErrorKinds(t *testing.T) {
	verr := NewValidationError(MsgInvalidPhoneNumber)
	if verr.Error() != "Invalid phone number" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if !errors.Is(verr, ErrValidation) || errors.Is(verr, ErrDuplicate) {
		t.Error("validation error has wrong kind")
	}

	wrapped := fmt.Errorf("service: %w", NewDuplicateError(MsgContactAlreadyExists))
	if !errors.Is(wrapped, ErrDuplicate) {
		t.Error("wrapped duplicate error lost its kind")
	}
	var cerr *ContactError
	if !errors.As(wrapped, &cerr) || cerr.Message != "Contact already exists" {
		t.Errorf("errors.As() = %v", cerr)
	}
}
