package search

import (
	"io"
	"testing"

	"github.com/pkg/errors"
)

func TestUnavailable(t *testing.T) {
	err := Unavailable(errors.WithStack(io.ErrUnexpectedEOF))

	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected error to match ErrUnavailable, got %+v", err)
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected error to unwrap to its cause, got %+v", err)
	}

	if errors.Is(err, ErrConfiguration) {
		t.Errorf("unexpected match with ErrConfiguration")
	}

	if Unavailable(nil) != nil {
		t.Errorf("expected nil error")
	}
}
