package model

import (
	"encoding/json"
	"frontdesk/shared"
	"sort"
	"strings"
)

const PathRooms = "/v1/rooms/"

// Room is a hotel room as the backend lists it. The room number is sent as a number by some
// deployments and as a string by others.
type Room struct {
	ID              int64           `json:"id"`
	Number          json.RawMessage `json:"room"              swaggertype:"string"`
	RoomType        string          `json:"room_type,omitempty"`
	RoomTypeDisplay string          `json:"room_type_display,omitempty"`
}

// Label is the room number as text, "?" when the backend sent none.
func (r Room) Label() string {
	text := strings.Trim(strings.TrimSpace(string(r.Number)), `"`)
	if text == "" || text == "null" {
		return "?"
	}

	return text
}

// TypeLabel falls back to the standard room type when the backend has no display name.
func (r Room) TypeLabel() string {
	if r.RoomTypeDisplay != "" {
		return r.RoomTypeDisplay
	}

	return "Standard"
}

// SortByNumber orders rooms by numeric room number; rooms without one go last, by id.
func SortByNumber(rooms []Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		a, aok := shared.ParseID(rooms[i].Number)
		b, bok := shared.ParseID(rooms[j].Number)

		switch {
		case aok && bok && a != b:
			return a < b
		case aok != bok:
			return aok
		default:
			return rooms[i].ID < rooms[j].ID
		}
	})
}
