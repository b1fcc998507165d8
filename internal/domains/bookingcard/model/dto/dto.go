package dto

import (
	"encoding/json"
	"frontdesk/internal/domains/bookingcard/model"
	paymentModel "frontdesk/internal/domains/payment/model"
	"frontdesk/shared"
	"frontdesk/shared/failure"
	"frontdesk/shared/money"
)

// SaveCardRequest is the card form as the desk submits it. Identifiers arrive as numbers or
// strings and may be placeholders such as "" or "None".
type SaveCardRequest struct {
	PrimaryGuest json.RawMessage   `json:"primary_guest" swaggertype:"integer"`
	Agent        json.RawMessage   `json:"agent"         swaggertype:"integer"`
	Bookings     []json.RawMessage `json:"bookings"      swaggertype:"array,integer"`
	Goods        map[string]int    `json:"goods"`
	Services     map[string]int    `json:"services"`
	Status       *model.Status     `json:"status"`
	TotalAmount  money.Amount      `json:"total_amount"  swaggertype:"string"`
}

// SavePayload is the body sent to the backend. All identifiers are integers.
type SavePayload struct {
	PrimaryGuest int64        `json:"primary_guest"`
	Bookings     []int64      `json:"bookings"`
	Goods        []int64      `json:"goods"`
	Services     []int64      `json:"services"`
	Status       model.Status `json:"status"`
	TotalAmount  money.Amount `json:"total_amount"`
}

// NormalizedCard is a validated save request.
type NormalizedCard struct {
	Payload SavePayload
	Agent   *int64
	// QuantitiesDropped is set when a goods or services quantity above one could not be
	// submitted; the backend takes identifiers only.
	QuantitiesDropped bool
}

// Normalize validates the request and builds the backend payload without any I/O.
func (r *SaveCardRequest) Normalize() (NormalizedCard, error) {
	primaryGuest, ok := shared.ParseID(r.PrimaryGuest)
	if !ok {
		return NormalizedCard{}, failure.BadRequestFromString("primary_guest is required")
	}

	bookings := shared.NormalizeIDs(r.Bookings)
	if len(bookings) == 0 {
		return NormalizedCard{}, failure.BadRequestFromString("at least one valid booking is required")
	}

	status := model.StatusActive
	if r.Status != nil {
		if !r.Status.Valid() {
			return NormalizedCard{}, failure.BadRequestFromString("status must be 1 (active), 2 (completed) or 3 (cancelled)")
		}

		status = *r.Status
	}

	if r.TotalAmount.IsNegative() {
		return NormalizedCard{}, failure.BadRequestFromString("total_amount must not be negative")
	}

	var agent *int64
	if !shared.IsBlankID(r.Agent) {
		id, ok := shared.ParseID(r.Agent)
		if !ok {
			return NormalizedCard{}, failure.BadRequestFromString("agent must be a positive integer")
		}

		agent = &id
	}

	return NormalizedCard{
		Payload: SavePayload{
			PrimaryGuest: primaryGuest,
			Bookings:     bookings,
			Goods:        shared.SelectedIDs(r.Goods),
			Services:     shared.SelectedIDs(r.Services),
			Status:       status,
			TotalAmount:  r.TotalAmount,
		},
		Agent:             agent,
		QuantitiesDropped: hasQuantityAboveOne(r.Goods) || hasQuantityAboveOne(r.Services),
	}, nil
}

func hasQuantityAboveOne(quantities map[string]int) bool {
	for _, qty := range quantities {
		if qty > 1 {
			return true
		}
	}

	return false
}

type PropagationFailure struct {
	BookingID int64  `json:"booking_id"`
	Error     string `json:"error"`
}

// Propagation reports how the card agent reached the card's bookings.
type Propagation struct {
	AgentID   *int64               `json:"agent_id,omitempty"`
	Attempted int                  `json:"attempted"`
	Updated   []int64              `json:"updated"`
	Failed    []PropagationFailure `json:"failed"`
}

type SaveCardResponse struct {
	Card              model.Card  `json:"card"`
	Created           bool        `json:"created"`
	Propagation       Propagation `json:"propagation"`
	QuantitiesDropped bool        `json:"quantities_dropped"`
}

type CardDetailResponse struct {
	Card           model.Card                  `json:"card"`
	Agent          *int64                      `json:"agent"`
	Payments       paymentModel.CardPayments   `json:"payments"`
	Reconciliation paymentModel.Reconciliation `json:"reconciliation"`
}

type CardSummary struct {
	Card           model.Card                  `json:"card"`
	Reconciliation paymentModel.Reconciliation `json:"reconciliation"`
}

type ListCardsResponse struct {
	Cards []CardSummary `json:"cards"`
	Stats model.Stats   `json:"stats"`
}

type CheckOutResponse struct {
	CardID     int64   `json:"card_id"`
	CheckedOut []int64 `json:"checked_out"`
}
