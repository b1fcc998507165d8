package validator_test

import (
	"errors"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"io"
	"net/http"
	"strings"
	"testing"
)

type stayRequest struct {
	Guest    int64  `json:"guest"     validate:"required,gt=0"`
	CheckIn  string `json:"check_in"  validate:"required,isodate"`
	CheckOut string `json:"check_out" validate:"omitempty,isodate"`
	Kind     string `json:"kind"      validate:"omitempty,oneof=card cash bank"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    stayRequest
		message string
	}{
		{
			name: "valid",
			data: stayRequest{Guest: 1, CheckIn: "2026-03-01", CheckOut: "2026-03-03", Kind: "cash"},
		},
		{
			name:    "missing guest uses json name",
			data:    stayRequest{CheckIn: "2026-03-01"},
			message: "guest is required",
		},
		{
			name:    "check in not a calendar date",
			data:    stayRequest{Guest: 1, CheckIn: "01.03.2026"},
			message: "check_in must be a date in YYYY-MM-DD format",
		},
		{
			name:    "impossible date",
			data:    stayRequest{Guest: 1, CheckIn: "2026-02-30"},
			message: "check_in must be a date in YYYY-MM-DD format",
		},
		{
			name:    "unknown kind",
			data:    stayRequest{Guest: 1, CheckIn: "2026-03-01", Kind: "crypto"},
			message: "kind must be one of card cash bank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.message == "" {
				if err != nil {
					t.Errorf("expected no validation error, got: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			if err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, err.Error())
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", failure.GetCode(err))
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2026-03-01", "isodate"); err != nil {
		t.Errorf("expected valid date, got %v", err)
	}

	if err := validator.ValidateVar("tomorrow", "isodate"); err == nil {
		t.Error("expected invalid date to fail")
	}

	if err := validator.ValidateVar(0, "gt=0"); err == nil {
		t.Error("expected zero to fail gt=0")
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		var req stayRequest

		err := validator.Validate(strings.NewReader(`{"guest": 3, "check_in": "2026-03-01"}`), &req)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		if req.Guest != 3 {
			t.Errorf("expected guest 3, got %d", req.Guest)
		}
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		var req stayRequest

		err := validator.Validate(strings.NewReader(`{"guest": `), &req)
		if failure.GetCode(err) != http.StatusBadRequest {
			t.Errorf("expected 400, got %v", err)
		}
	})

	t.Run("empty body keeps io.EOF reachable", func(t *testing.T) {
		var req stayRequest

		err := validator.Validate(strings.NewReader(``), &req)
		if !errors.Is(err, io.EOF) {
			t.Errorf("expected io.EOF in chain, got %v", err)
		}
	})

	t.Run("decoded but invalid", func(t *testing.T) {
		var req stayRequest

		err := validator.Validate(strings.NewReader(`{"guest": 3}`), &req)
		if err == nil || err.Error() != "check_in is required" {
			t.Errorf("unexpected error %v", err)
		}
	})
}
