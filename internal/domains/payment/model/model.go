package model

import (
	"frontdesk/shared/money"
)

// Kind names one of the three payment collections the backend keeps per booking card.
type Kind string

const (
	KindCard Kind = "card"
	KindCash Kind = "cash"
	KindBank Kind = "bank"
)

// Kinds lists every payment kind in display order.
var Kinds = []Kind{KindCard, KindCash, KindBank}

func (k Kind) Valid() bool {
	switch k {
	case KindCard, KindCash, KindBank:
		return true
	default:
		return false
	}
}

// Path is the backend collection holding payments of this kind.
func (k Kind) Path() string {
	return "/v1/" + string(k) + "-payments/"
}

// Payment is a single monetary receipt against a booking card. The backend has no update or
// delete for payments.
type Payment struct {
	ID              int64        `json:"id"`
	BookingCard     int64        `json:"booking_card"`
	Agent           *int64       `json:"agent"`
	AgentName       string       `json:"agent_name,omitempty"`
	Amount          money.Amount `json:"amount"`
	ChequeID        string       `json:"cheque_id,omitempty"`
	ReceivedBy      *int64       `json:"received_by,omitempty"`
	ReferenceNumber string       `json:"reference_number,omitempty"`
	BankName        string       `json:"bank_name,omitempty"`
	CreatedAt       string       `json:"created_at,omitempty"`
	Kind            Kind         `json:"kind"`
}

// CardPayments groups a card's payments by kind. A kind that could not be read is empty.
type CardPayments struct {
	Card []Payment `json:"card"`
	Cash []Payment `json:"cash"`
	Bank []Payment `json:"bank"`
}

// EmptyCardPayments has non-nil empty lists so it serializes as [] rather than null.
func EmptyCardPayments() CardPayments {
	return CardPayments{Card: []Payment{}, Cash: []Payment{}, Bank: []Payment{}}
}

// Of returns the payments of one kind.
func (c CardPayments) Of(kind Kind) []Payment {
	switch kind {
	case KindCard:
		return c.Card
	case KindCash:
		return c.Cash
	case KindBank:
		return c.Bank
	default:
		return nil
	}
}

// Set replaces the payments of one kind, stamping each with kind.
func (c *CardPayments) Set(kind Kind, payments []Payment) {
	for i := range payments {
		payments[i].Kind = kind
	}

	switch kind {
	case KindCard:
		c.Card = payments
	case KindCash:
		c.Cash = payments
	case KindBank:
		c.Bank = payments
	}
}

// All returns every payment, card first, then cash, then bank.
func (c CardPayments) All() []Payment {
	all := make([]Payment, 0, len(c.Card)+len(c.Cash)+len(c.Bank))
	all = append(all, c.Card...)
	all = append(all, c.Cash...)

	return append(all, c.Bank...)
}

// TotalPaid sums every payment of every kind. No rounding is applied.
func TotalPaid(payments CardPayments) money.Amount {
	all := payments.All()

	amounts := make([]money.Amount, 0, len(all))
	for _, payment := range all {
		amounts = append(amounts, payment.Amount)
	}

	return money.Sum(amounts...)
}

// IsFullyPaid reports whether the card's payments cover total. Paying exactly the total counts.
func IsFullyPaid(payments CardPayments, total money.Amount) bool {
	return TotalPaid(payments).GreaterThanOrEqual(total.Decimal)
}

// Reconciliation is the paid/outstanding picture of one card.
type Reconciliation struct {
	TotalAmount money.Amount `json:"total_amount"`
	TotalPaid   money.Amount `json:"total_paid"`
	Outstanding money.Amount `json:"outstanding"`
	IsFullyPaid bool         `json:"is_fully_paid"`
}

// Reconcile compares payments with the card total. Outstanding is negative on overpayment.
func Reconcile(payments CardPayments, total money.Amount) Reconciliation {
	paid := TotalPaid(payments)

	return Reconciliation{
		TotalAmount: total,
		TotalPaid:   paid,
		Outstanding: total.Sub(paid),
		IsFullyPaid: paid.GreaterThanOrEqual(total.Decimal),
	}
}

// PayerTier tells which source supplied a payment's agent.
type PayerTier string

const (
	PayerTierPayment PayerTier = "payment"
	PayerTierCard    PayerTier = "card"
	PayerTierBooking PayerTier = "booking"
	PayerTierNone    PayerTier = "none"
)

// PayerResolution is the agent a payment will be recorded against.
type PayerResolution struct {
	AgentID *int64
	Tier    PayerTier
}

// ResolvePayer picks the payment's agent: the one given with the payment, else the card's, else
// the agent of the card's first booking.
func ResolvePayer(explicit, card, firstBooking *int64) PayerResolution {
	for _, candidate := range []struct {
		id   *int64
		tier PayerTier
	}{
		{explicit, PayerTierPayment},
		{card, PayerTierCard},
		{firstBooking, PayerTierBooking},
	} {
		if candidate.id != nil && *candidate.id > 0 {
			id := *candidate.id

			return PayerResolution{AgentID: &id, Tier: candidate.tier}
		}
	}

	return PayerResolution{Tier: PayerTierNone}
}

// CardRef is what recording a payment needs to know about its card.
type CardRef struct {
	ID                int64
	TotalAmount       money.Amount
	Agent             *int64
	FirstBookingAgent *int64
}
