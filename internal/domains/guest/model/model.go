package model

import (
	"slices"
	"strings"
)

const (
	PathGuests        = "/v1/guests/"
	PathNationalities = "/v1/nationalities/"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
)

type Guest struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	MiddleName      string `json:"middle_name"`
	FullName        string `json:"full_name,omitempty"`
	Nationality     *int64 `json:"nationality"`
	NationalityName string `json:"nationality_name,omitempty"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	DateOfBirth     string `json:"date_of_birth"`
	Gender          string `json:"gender"`
	Notes           string `json:"notes"`
	Blacklisted     bool   `json:"blacklisted"`
	BlacklistReason string `json:"blacklist_reason,omitempty"`
}

// Name is the backend's full name, or the name parts joined when it sent none.
func (g Guest) Name() string {
	if name := strings.TrimSpace(g.FullName); name != "" {
		return name
	}

	return strings.Join(strings.Fields(g.LastName+" "+g.FirstName+" "+g.MiddleName), " ")
}

// Matches reports whether search hits the guest's name, phone or email.
func (g Guest) Matches(search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(g.Name()), search) ||
		strings.Contains(g.Phone, search) ||
		strings.Contains(strings.ToLower(g.Email), search)
}

// Stats splits guests into blacklisted and active ones.
type Stats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Blacklisted int `json:"blacklisted"`
}

func CountByStanding(guests []Guest) Stats {
	stats := Stats{Total: len(guests)}

	for _, guest := range guests {
		if guest.Blacklisted {
			stats.Blacklisted++
		} else {
			stats.Active++
		}
	}

	return stats
}

type Nationality struct {
	ID          int64  `json:"id"`
	Nationality string `json:"nationality"`
	Code        string `json:"code"`
}

// SortNationalities puts every nationality whose name contains home first, then orders the rest
// alphabetically, ignoring case.
func SortNationalities(nationalities []Nationality, home string) {
	home = strings.ToLower(strings.TrimSpace(home))

	isHome := func(n Nationality) bool {
		return home != "" && strings.Contains(strings.ToLower(n.Nationality), home)
	}

	slices.SortStableFunc(nationalities, func(a, b Nationality) int {
		aHome, bHome := isHome(a), isHome(b)

		switch {
		case aHome && !bHome:
			return -1
		case bHome && !aHome:
			return 1
		default:
			return strings.Compare(strings.ToLower(a.Nationality), strings.ToLower(b.Nationality))
		}
	})
}
