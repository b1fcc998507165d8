package dto

import (
	"frontdesk/internal/domains/payment/model"
	"frontdesk/shared/money"
)

type RecordPaymentRequest struct {
	Kind            model.Kind   `json:"kind"             validate:"required,oneof=card cash bank"`
	Amount          money.Amount `json:"amount"           swaggertype:"string"`
	Agent           *int64       `json:"agent"            validate:"omitempty,gt=0"`
	ChequeID        string       `json:"cheque_id"        validate:"omitempty,max=100"`
	ReferenceNumber string       `json:"reference_number" validate:"omitempty,max=100"`
	BankName        string       `json:"bank_name"        validate:"omitempty,max=200"`
	// ReceivedBy is the worker who took a cash payment.
	ReceivedBy *int64 `json:"received_by" validate:"omitempty,gt=0"`
}

// ToPayload builds the backend body for kind. Fields a kind does not know are left out.
func (r *RecordPaymentRequest) ToPayload(cardID int64, agent *int64, receivedBy *int64) map[string]any {
	payload := map[string]any{
		"amount":       r.Amount,
		"booking_card": cardID,
		"agent":        agent,
	}

	switch r.Kind {
	case model.KindCard:
		payload["cheque_id"] = r.ChequeID
	case model.KindCash:
		payload["cheque_id"] = r.ChequeID
		payload["received_by"] = receivedBy
	case model.KindBank:
		payload["reference_number"] = r.ReferenceNumber
		payload["bank_name"] = r.BankName
	}

	return payload
}

type CardPaymentsResponse struct {
	CardID         int64                `json:"card_id"`
	Payments       model.CardPayments   `json:"payments"`
	Reconciliation model.Reconciliation `json:"reconciliation"`
}

type RecordPaymentResponse struct {
	Payment        model.Payment        `json:"payment"`
	PayerTier      model.PayerTier      `json:"payer_tier"`
	Reconciliation model.Reconciliation `json:"reconciliation"`
}
