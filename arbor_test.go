package arbor

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorWrapping(t *testing.T) {
	err := fmt.Errorf("cousins: %w", ErrNodeNotFound)
	if !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("expected wrapped error to be ErrNodeNotFound")
	}
	if errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected wrapped error not to be ErrMalformedInput")
	}
	if ErrIllegalArguments.Error() != "illegal arguments" {
		t.Errorf("unexpected error message %q", ErrIllegalArguments.Error())
	}
}
