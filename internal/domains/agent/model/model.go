package model

import (
	"strings"
)

const PathAgents = "/v1/agents/"

// Agent is a counterparty that books rooms on behalf of guests. The backend's field names are
// kept as they are, misspelled address included.
type Agent struct {
	ID         int64  `json:"id"`
	FullTitle  string `json:"full_title"`
	ShortTitle string `json:"short_title"`
	TaxID      string `json:"IIN_BIN"`
	Address    string `json:"adress"`
	IBAN       string `json:"IBAN"`
	BIC        string `json:"BIC"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"is_active"`
}

// Matches reports whether search hits either title, the tax id or the phone.
func (a Agent) Matches(search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(a.FullTitle), search) ||
		strings.Contains(strings.ToLower(a.ShortTitle), search) ||
		strings.Contains(a.TaxID, search) ||
		strings.Contains(a.Phone, search)
}

type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

func CountByActivity(agents []Agent) Stats {
	stats := Stats{Total: len(agents)}

	for _, agent := range agents {
		if agent.IsActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}

	return stats
}
