package dto

import (
	"frontdesk/internal/domains/guest/model"
	"strings"
)

type ListGuestsFilter struct {
	Search          string
	BlacklistedOnly bool
}

type ListGuestsResponse struct {
	Guests []model.Guest `json:"guests"`
	Stats  model.Stats   `json:"stats"`
}

type SaveGuestRequest struct {
	FirstName   string `json:"first_name"    validate:"required,max=150"`
	LastName    string `json:"last_name"     validate:"required,max=150"`
	MiddleName  string `json:"middle_name"   validate:"omitempty,max=150"`
	Nationality int64  `json:"nationality"   validate:"required,gt=0"`
	Phone       string `json:"phone"         validate:"omitempty,max=32"`
	Email       string `json:"email"         validate:"omitempty,email"`
	DateOfBirth string `json:"date_of_birth" validate:"required,isodate"`
	Gender      string `json:"gender"        validate:"omitempty,oneof=M F"`
	Notes       string `json:"notes"         validate:"omitempty,max=1000"`
}

// ToPayload builds the backend body. The gender defaults to male, as the front desk form does.
func (s *SaveGuestRequest) ToPayload() map[string]any {
	gender := s.Gender
	if gender == "" {
		gender = model.GenderMale
	}

	return map[string]any{
		"first_name":    strings.TrimSpace(s.FirstName),
		"last_name":     strings.TrimSpace(s.LastName),
		"middle_name":   strings.TrimSpace(s.MiddleName),
		"nationality":   s.Nationality,
		"phone":         strings.TrimSpace(s.Phone),
		"email":         strings.TrimSpace(s.Email),
		"date_of_birth": s.DateOfBirth,
		"gender":        gender,
		"notes":         s.Notes,
	}
}

type BlacklistRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

type CreateNationalityRequest struct {
	Nationality string `json:"nationality" validate:"required,max=100"`
	Code        string `json:"code"        validate:"omitempty,max=10"`
}

type ListNationalitiesResponse struct {
	Nationalities []model.Nationality `json:"nationalities"`
}
