package dto

import (
	"frontdesk/internal/domains/agent/model"
	"strings"
)

type ListAgentsResponse struct {
	Agents []model.Agent `json:"agents"`
	Stats  model.Stats   `json:"stats"`
}

type SaveAgentRequest struct {
	FullTitle  string `json:"full_title"  validate:"required,max=255"`
	ShortTitle string `json:"short_title" validate:"omitempty,max=100"`
	TaxID      string `json:"IIN_BIN"     validate:"required,numeric,len=12"`
	Address    string `json:"adress"      validate:"omitempty,max=255"`
	IBAN       string `json:"IBAN"        validate:"omitempty,alphanum,max=34"`
	BIC        string `json:"BIC"         validate:"omitempty,alphanum,max=11"`
	Phone      string `json:"phone"       validate:"omitempty,max=32"`
	IsActive   *bool  `json:"is_active"`
}

// ToPayload builds the backend body. Agents are active unless the request says otherwise.
func (s *SaveAgentRequest) ToPayload() map[string]any {
	active := true
	if s.IsActive != nil {
		active = *s.IsActive
	}

	return map[string]any{
		"full_title":  strings.TrimSpace(s.FullTitle),
		"short_title": strings.TrimSpace(s.ShortTitle),
		"IIN_BIN":     s.TaxID,
		"adress":      strings.TrimSpace(s.Address),
		"IBAN":        strings.ToUpper(s.IBAN),
		"BIC":         strings.ToUpper(s.BIC),
		"phone":       strings.TrimSpace(s.Phone),
		"is_active":   active,
	}
}
