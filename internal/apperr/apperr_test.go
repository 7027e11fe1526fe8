package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestKindOfAndStatusCode(t *testing.T) {
	tests := []struct {
		err    error
		kind   Kind
		status int
	}{
		{Validation("reason too short"), KindValidation, fiber.StatusBadRequest},
		{Authorization(""), KindAuthorization, fiber.StatusForbidden},
		{NotFound("task"), KindNotFound, fiber.StatusNotFound},
		{Conflict("object has tasks"), KindConflict, fiber.StatusConflict},
		{Upstream(errors.New("connection refused")), KindUpstream, fiber.StatusBadGateway},
		{errors.New("plain"), KindUnknown, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.kind {
			t.Errorf("KindOf(%v) = %v, want %v", tt.err, got, tt.kind)
		}
		if got := StatusCode(tt.err); got != tt.status {
			t.Errorf("StatusCode(%v) = %d, want %d", tt.err, got, tt.status)
		}
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("pause task: %w", Validation("resume_at must be in the future"))
	if !Is(err, KindValidation) {
		t.Errorf("wrapped validation error lost its kind: %v", err)
	}
	if StatusCode(err) != fiber.StatusBadRequest {
		t.Errorf("wrapped validation error mapped to %d", StatusCode(err))
	}
}

func TestUpstreamUnwraps(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := Upstream(cause)
	if !errors.Is(err, cause) {
		t.Error("Upstream should wrap its cause")
	}
}
