package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/domains/room/model"
)

func TestRoom_Label(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `{"id": 1, "room": 101}`, want: "101"},
		{raw: `{"id": 1, "room": "12A"}`, want: "12A"},
		{raw: `{"id": 1, "room": null}`, want: "?"},
		{raw: `{"id": 1}`, want: "?"},
	}

	for _, tt := range tests {
		var room model.Room
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &room))
		assert.Equal(t, tt.want, room.Label(), tt.raw)
	}
}

func TestRoom_TypeLabel(t *testing.T) {
	assert.Equal(t, "Standard", model.Room{}.TypeLabel())
	assert.Equal(t, "Lux", model.Room{RoomTypeDisplay: "Lux"}.TypeLabel())
}

func TestSortByNumber(t *testing.T) {
	rooms := []model.Room{
		{ID: 1, Number: json.RawMessage(`"210"`)},
		{ID: 2, Number: json.RawMessage(`"A1"`)},
		{ID: 3, Number: json.RawMessage(`9`)},
		{ID: 4, Number: json.RawMessage(`101`)},
	}

	model.SortByNumber(rooms)

	ids := make([]int64, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}

	assert.Equal(t, []int64{3, 4, 1, 2}, ids)
}
