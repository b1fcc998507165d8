package dto

import "frontdesk/internal/domains/room/model"

type RoomResponse struct {
	ID       int64  `json:"id"`
	Number   string `json:"room"`
	RoomType string `json:"room_type"`
}

type ListRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

func ToListRoomsResponse(rooms []model.Room) ListRoomsResponse {
	res := ListRoomsResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
		Total: len(rooms),
	}

	for _, room := range rooms {
		res.Rooms = append(res.Rooms, RoomResponse{
			ID:       room.ID,
			Number:   room.Label(),
			RoomType: room.TypeLabel(),
		})
	}

	return res
}
