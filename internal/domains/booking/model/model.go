package model

import (
	"cmp"
	"errors"
	"frontdesk/shared/constant"
	"slices"
)

const (
	PathBookings = "/v1/bookings/"
)

var (
	ErrBookingIDUnrecoverable = errors.New("booking was created but its id could not be recovered")
	ErrBookingLookupFailed    = errors.New("booking was created but the recovery lookup failed")
)

// Status is the lifecycle state of a booking.
type Status int

const (
	StatusBooked     Status = 1
	StatusCheckedIn  Status = 2
	StatusCheckedOut Status = 3
)

func (s Status) Valid() bool {
	return s >= StatusBooked && s <= StatusCheckedOut
}

type Booking struct {
	ID         int64  `json:"id"`
	PK         int64  `json:"pk,omitempty"`
	Guest      int64  `json:"guest"`
	GuestName  string `json:"guest_name,omitempty"`
	Agent      *int64 `json:"agent"`
	AgentName  string `json:"agent_name,omitempty"`
	Room       int64  `json:"room"`
	RoomNumber any    `json:"room_number,omitempty"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Note       string `json:"note"`
	Status     Status `json:"status"`
	CreatedBy  *int64 `json:"created_by,omitempty"`
}

// EchoedID is the identifier the backend returned for a freshly created booking, under either
// `id` or `pk`. Nil when the create response carried neither.
func (b Booking) EchoedID() *int64 {
	switch {
	case b.ID > 0:
		id := b.ID

		return &id
	case b.PK > 0:
		id := b.PK

		return &id
	default:
		return nil
	}
}

// Key returns the natural key used to find this booking again.
func (b Booking) Key() Key {
	return Key{Guest: b.Guest, Room: b.Room, CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// Key identifies a booking by what the desk submitted for it.
type Key struct {
	Guest    int64
	Room     int64
	CheckIn  string
	CheckOut string
}

// AgentTier tells which source supplied a booking's agent.
type AgentTier string

const (
	AgentTierBooking AgentTier = "booking"
	AgentTierCard    AgentTier = "card"
	AgentTierNone    AgentTier = "none"
)

type AgentResolution struct {
	AgentID *int64
	Tier    AgentTier
}

// ResolveAgent picks the agent for a new booking: the one chosen on the booking form, else the
// one on the surrounding card, else none.
func ResolveAgent(explicit, card *int64) AgentResolution {
	if explicit != nil && *explicit > 0 {
		id := *explicit

		return AgentResolution{AgentID: &id, Tier: AgentTierBooking}
	}

	if card != nil && *card > 0 {
		id := *card

		return AgentResolution{AgentID: &id, Tier: AgentTierCard}
	}

	return AgentResolution{Tier: AgentTierNone}
}

// IDTier tells how a created booking's identifier was obtained.
type IDTier string

const (
	IDTierEcho   IDTier = "echo"
	IDTierLookup IDTier = "lookup"
	IDTierNone   IDTier = "none"
)

type IDResolution struct {
	ID      int64
	Tier    IDTier
	Booking *Booking
}

// ResolveBookingID prefers the identifier echoed by the create call. Without one it takes the
// first candidate whose guest, room and dates equal key exactly. Candidates are expected newest
// first. It never invents an identifier.
func ResolveBookingID(echoed *int64, candidates []Booking, key Key) IDResolution {
	if echoed != nil && *echoed > 0 {
		return IDResolution{ID: *echoed, Tier: IDTierEcho}
	}

	for i := range candidates {
		candidate := candidates[i]
		if candidate.Key() != key {
			continue
		}

		if id := candidate.EchoedID(); id != nil {
			return IDResolution{ID: *id, Tier: IDTierLookup, Booking: &candidate}
		}
	}

	return IDResolution{Tier: IDTierNone}
}

// Day is the set of bookings checking in on one date.
type Day struct {
	Date     string    `json:"date"`
	Bookings []Booking `json:"bookings"`
}

// GroupByCheckIn keeps bookings checking in on or after from (all when from is empty) and
// groups them by check-in date, dates ascending. Dates compare as YYYY-MM-DD strings.
func GroupByCheckIn(bookings []Booking, from string) []Day {
	index := map[string]int{}
	days := []Day{}

	for _, booking := range bookings {
		date := booking.CheckIn
		if len(date) > len(constant.DateFormat) {
			date = date[:len(constant.DateFormat)]
		}

		if from != "" && date < from {
			continue
		}

		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, Day{Date: date, Bookings: []Booking{}})
		}

		days[i].Bookings = append(days[i].Bookings, booking)
	}

	slices.SortFunc(days, func(a, b Day) int {
		return cmp.Compare(a.Date, b.Date)
	})

	return days
}
