package failure_test

import (
	"errors"
	"fmt"
	"frontdesk/shared/failure"
	"net/http"
	"testing"
)

var errSentinel = errors.New("sentinel")

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil error")
	}

	err := failure.BadRequest(errors.New("validation failed"))
	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected code 400, got %d", failure.GetCode(err))
	}

	if err.Error() != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Error())
	}
}

func TestUpstream(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   int
	}{
		{name: "field errors keep 400", status: http.StatusBadRequest, code: http.StatusBadRequest},
		{name: "not found is kept", status: http.StatusNotFound, code: http.StatusNotFound},
		{name: "auth failure is kept", status: http.StatusUnauthorized, code: http.StatusUnauthorized},
		{name: "server error is a bad gateway", status: http.StatusInternalServerError, code: http.StatusBadGateway},
		{name: "unreachable is a bad gateway", status: 0, code: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.Upstream(tt.status, "detail", nil)
			if got := failure.GetCode(err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGateway(t *testing.T) {
	err := fmt.Errorf("create: %w", failure.Gateway(errSentinel, "booking id could not be recovered"))

	if !errors.Is(err, errSentinel) {
		t.Error("expected sentinel to be reachable through the failure")
	}

	if failure.GetCode(err) != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", failure.GetCode(err))
	}
}

func TestWrap(t *testing.T) {
	if failure.Wrap(nil, "prefix") != nil {
		t.Error("expected nil for nil error")
	}

	err := failure.Wrap(fmt.Errorf("patch: %w", failure.Upstream(http.StatusBadRequest, "status: invalid", nil)), "checked out 1 of 2 bookings")

	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected code to be kept, got %d", failure.GetCode(err))
	}

	if err.Error() != "checked out 1 of 2 bookings: status: invalid" {
		t.Errorf("unexpected message %q", err.Error())
	}

	plain := failure.Wrap(errors.New("boom"), "step")
	if failure.GetCode(plain) != http.StatusInternalServerError || plain.Error() != "step: boom" {
		t.Errorf("unexpected plain wrap %d %q", failure.GetCode(plain), plain.Error())
	}
}

func TestUnavailable(t *testing.T) {
	err := failure.Unavailable(errSentinel, "storage off")

	if !errors.Is(err, errSentinel) {
		t.Error("expected cause to be reachable")
	}

	if err.Error() != "storage off" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestGetCode(t *testing.T) {
	if failure.GetCode(errors.New("plain")) != http.StatusInternalServerError {
		t.Error("expected plain errors to be internal")
	}

	if failure.GetCode(failure.NotFound("booking card")) != http.StatusNotFound {
		t.Error("expected not found code")
	}

	if failure.GetCode(failure.Unavailable(errSentinel, "storage off")) != http.StatusServiceUnavailable {
		t.Error("expected service unavailable code")
	}
}

func TestIsClientError(t *testing.T) {
	if !failure.IsClientError(failure.BadRequestFromString("bad")) {
		t.Error("expected 400 to be a client error")
	}

	if failure.IsClientError(errors.New("boom")) {
		t.Error("expected 500 not to be a client error")
	}
}
