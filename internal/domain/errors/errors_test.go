package errors

import (
	stderrors "errors"
	"testing"
)

func TestValidationfWrapsSentinel(t *testing.T) {
	err := Validationf("amount %q is not a decimal number", "ten")
	if !stderrors.Is(err, ErrValidation) {
		t.Fatalf("expected error to wrap ErrValidation, got %v", err)
	}
	if got := err.Error(); got != `validation failed: amount "ten" is not a decimal number` {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestPromoteErrorUnwraps(t *testing.T) {
	cause := stderrors.New("disk full")
	err := &PromoteError{File: "photo.png", Err: cause}

	if !stderrors.Is(err, cause) {
		t.Fatal("expected PromoteError to unwrap to its cause")
	}

	var pe *PromoteError
	if !stderrors.As(error(err), &pe) {
		t.Fatal("expected errors.As to find PromoteError")
	}
	if pe.File != "photo.png" {
		t.Fatalf("unexpected file %q", pe.File)
	}
	if got := err.Error(); got != `promote attachment "photo.png": disk full` {
		t.Fatalf("unexpected message %q", got)
	}
}
