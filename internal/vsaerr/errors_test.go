package vsaerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsHandshakeError(t *testing.T) {
	err := NewHandshakeError("link-info chain", nil)
	if !IsHandshakeError(err) {
		t.Fatal("IsHandshakeError(err) = false, want true")
	}
	if IsHandshakeError(ErrRoutingMiss) {
		t.Fatal("IsHandshakeError(ErrRoutingMiss) = true, want false")
	}

	wrapped := fmt.Errorf("wrapping: %w", err)
	if !IsHandshakeError(wrapped) {
		t.Fatal("IsHandshakeError should see through fmt.Errorf wrapping")
	}
}

func TestIsEmissionError(t *testing.T) {
	err := NewEmissionError("/tmp/out.dot", errors.New("disk full"))
	if !IsEmissionError(err) {
		t.Fatal("IsEmissionError(err) = false, want true")
	}
	if IsEmissionError(ErrNoProducer) {
		t.Fatal("IsEmissionError(ErrNoProducer) = true, want false")
	}
}

func TestHandshakeError_UnwrapAndMessage(t *testing.T) {
	cause := errors.New("null next CreateInstance")
	err := NewHandshakeError("next CreateInstance", cause)

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false, want true")
	}
	if got := err.Error(); got == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestEmissionError_UnwrapAndMessage(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewEmissionError("/tmp/out.dot", cause)

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false, want true")
	}
	if got := err.Error(); got == "" {
		t.Fatal("Error() returned empty string")
	}
}
