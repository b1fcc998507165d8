package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/bookingcard/model"
)

func TestCard_DecodesBothBookingShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want model.RefList
	}{
		{"bare ids", `{"id": 1, "bookings": [3, 4]}`, model.RefList{3, 4}},
		{"embedded objects", `{"id": 1, "bookings": [{"id": 3, "room": 9}, {"id": "4"}]}`, model.RefList{3, 4}},
		{"string ids and placeholders", `{"id": 1, "bookings": ["5", "None", "", null, 0]}`, model.RefList{5}},
		{"null", `{"id": 1, "bookings": null}`, model.RefList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var card model.Card
			require.NoError(t, json.Unmarshal([]byte(tt.body), &card))

			assert.Equal(t, tt.want, card.Bookings)
		})
	}
}

func TestCard_DecodesTotalAmount(t *testing.T) {
	var card model.Card
	require.NoError(t, json.Unmarshal([]byte(`{"id": 2, "total_amount": "15000.50", "status": 2}`), &card))

	assert.Equal(t, "15000.50", card.TotalAmount.Display())
	assert.Equal(t, model.StatusCompleted, card.Status)
}

func TestCard_Agents(t *testing.T) {
	agent := func(v int64) *int64 { return &v }

	card := model.Card{BookingsList: []bookingModel.Booking{{ID: 1, Agent: agent(8)}, {ID: 2, Agent: agent(9)}}}

	assert.Equal(t, agent(8), card.FirstBookingAgent())
	assert.Equal(t, agent(8), card.CardAgent())

	card.Agent = agent(4)
	assert.Equal(t, agent(4), card.CardAgent())
	assert.Equal(t, agent(8), card.FirstBookingAgent())

	assert.Nil(t, model.Card{}.CardAgent())
	assert.Nil(t, model.Card{BookingsList: []bookingModel.Booking{{ID: 1}}}.FirstBookingAgent())
}

func TestCard_BookingIDs(t *testing.T) {
	assert.Equal(t, []int64{1, 2}, model.Card{Bookings: model.RefList{1, 2}}.BookingIDs())
	assert.Equal(t, []int64{7}, model.Card{BookingsList: []bookingModel.Booking{{ID: 7}, {}}}.BookingIDs())
}

func TestCard_Matches(t *testing.T) {
	card := model.Card{ID: 125, PrimaryGuestName: "Aigerim Nurlanovna"}

	assert.True(t, card.Matches(""))
	assert.True(t, card.Matches("aiger"))
	assert.True(t, card.Matches("12"))
	assert.False(t, card.Matches("bolat"))
}

func TestCountByStatus(t *testing.T) {
	stats := model.CountByStatus([]model.Card{
		{Status: model.StatusActive},
		{Status: model.StatusActive},
		{Status: model.StatusCompleted},
		{Status: model.StatusCancelled},
	})

	assert.Equal(t, model.Stats{Total: 4, Active: 2, Completed: 1, Cancelled: 1}, stats)
}
