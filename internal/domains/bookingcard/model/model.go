package model

import (
	"bytes"
	"encoding/json"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/money"
	"strconv"
	"strings"
)

const (
	PathBookingCards = "/v1/booking-cards/"
)

// Status is the lifecycle state of a booking card.
type Status int

const (
	StatusActive    Status = 1
	StatusCompleted Status = 2
	StatusCancelled Status = 3
)

func (s Status) Valid() bool {
	return s >= StatusActive && s <= StatusCancelled
}

// RefList is a list of related identifiers. The backend sends either bare ids or embedded
// objects carrying an `id`; both decode to the ids.
type RefList []int64

func (r *RefList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = RefList{}

		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ids := make(RefList, 0, len(raw))

	for _, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '{' {
			var ref struct {
				ID json.RawMessage `json:"id"`
			}

			if err := json.Unmarshal(item, &ref); err != nil {
				continue
			}

			item = ref.ID
		}

		if id, ok := shared.ParseID(item); ok {
			ids = append(ids, id)
		}
	}

	*r = ids

	return nil
}

// Card is the booking card aggregate: one stay with its bookings, extras and total.
type Card struct {
	ID               int64                  `json:"id"`
	PrimaryGuest     *int64                 `json:"primary_guest"`
	PrimaryGuestName string                 `json:"primary_guest_name,omitempty"`
	Agent            *int64                 `json:"agent,omitempty"`
	Bookings         RefList                `json:"bookings"`
	BookingsList     []bookingModel.Booking `json:"bookings_list"`
	Goods            RefList                `json:"goods"`
	Services         RefList                `json:"services"`
	Status           Status                 `json:"status"`
	TotalAmount      money.Amount           `json:"total_amount"`
	CreatedAt        string                 `json:"created_at,omitempty"`
}

// FirstBookingAgent is the agent of the card's first attached booking, if any.
func (c Card) FirstBookingAgent() *int64 {
	if len(c.BookingsList) == 0 || c.BookingsList[0].Agent == nil || *c.BookingsList[0].Agent <= 0 {
		return nil
	}

	id := *c.BookingsList[0].Agent

	return &id
}

// CardAgent is the agent the card stands for. The backend stores agents on bookings, so unless
// the card carries one itself it is taken from the first booking.
func (c Card) CardAgent() *int64 {
	if c.Agent != nil && *c.Agent > 0 {
		id := *c.Agent

		return &id
	}

	return c.FirstBookingAgent()
}

// BookingIDs returns the attached booking ids, from the embedded list when the plain one is empty.
func (c Card) BookingIDs() []int64 {
	if len(c.Bookings) > 0 {
		return c.Bookings
	}

	ids := make([]int64, 0, len(c.BookingsList))
	for _, booking := range c.BookingsList {
		if id := booking.EchoedID(); id != nil {
			ids = append(ids, *id)
		}
	}

	return ids
}

// Matches reports whether search hits the primary guest's name or the card id.
func (c Card) Matches(search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(c.PrimaryGuestName), search) ||
		strings.Contains(strconv.FormatInt(c.ID, 10), search)
}

// Stats counts cards by status.
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

func CountByStatus(cards []Card) Stats {
	stats := Stats{Total: len(cards)}

	for _, card := range cards {
		switch card.Status {
		case StatusActive:
			stats.Active++
		case StatusCompleted:
			stats.Completed++
		case StatusCancelled:
			stats.Cancelled++
		}
	}

	return stats
}
