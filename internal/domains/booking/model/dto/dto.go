package dto

import (
	"frontdesk/internal/domains/booking/model"
)

type CreateBookingRequest struct {
	Guest     int64  `json:"guest"      validate:"required,gt=0"`
	Room      int64  `json:"room"       validate:"required,gt=0"`
	CheckIn   string `json:"check_in"   validate:"required,isodate"`
	CheckOut  string `json:"check_out"  validate:"required,isodate"`
	Note      string `json:"note"       validate:"omitempty,max=1000"`
	Agent     *int64 `json:"agent"      validate:"omitempty,gt=0"`
	CardAgent *int64 `json:"card_agent" validate:"omitempty,gt=0"`
}

func (c *CreateBookingRequest) Key() model.Key {
	return model.Key{Guest: c.Guest, Room: c.Room, CheckIn: c.CheckIn, CheckOut: c.CheckOut}
}

// ToPayload builds the backend body. New bookings always start as booked.
func (c *CreateBookingRequest) ToPayload(agent *int64, createdBy *int64) map[string]any {
	payload := map[string]any{
		"guest":     c.Guest,
		"agent":     agent,
		"room":      c.Room,
		"check_in":  c.CheckIn,
		"check_out": c.CheckOut,
		"note":      c.Note,
		"status":    model.StatusBooked,
	}

	if createdBy != nil {
		payload["created_by"] = *createdBy
	}

	return payload
}

type CreateBookingResponse struct {
	ID        int64           `json:"id"`
	IDTier    model.IDTier    `json:"id_tier"`
	AgentTier model.AgentTier `json:"agent_tier"`
	Booking   model.Booking   `json:"booking"`
}

// CreateGroupRequest books rooms[i] for guests[i]; surplus entries on either side are ignored.
type CreateGroupRequest struct {
	Rooms    []int64 `json:"rooms"     validate:"required,min=1,dive,gt=0"`
	Guests   []int64 `json:"guests"    validate:"required,min=1,dive,gt=0"`
	CheckIn  string  `json:"check_in"  validate:"required,isodate"`
	CheckOut string  `json:"check_out" validate:"required,isodate"`
	Agent    *int64  `json:"agent"     validate:"omitempty,gt=0"`
	Note     string  `json:"note"      validate:"omitempty,max=1000"`
}

// Items pairs rooms with guests into individual booking requests.
func (c *CreateGroupRequest) Items() []CreateBookingRequest {
	n := min(len(c.Rooms), len(c.Guests))
	items := make([]CreateBookingRequest, 0, n)

	for i := range n {
		items = append(items, CreateBookingRequest{
			Guest:    c.Guests[i],
			Room:     c.Rooms[i],
			CheckIn:  c.CheckIn,
			CheckOut: c.CheckOut,
			Note:     c.Note,
			Agent:    c.Agent,
		})
	}

	return items
}

type GroupItemResult struct {
	Room  int64  `json:"room"`
	Guest int64  `json:"guest"`
	ID    *int64 `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

type CreateGroupResponse struct {
	Created int               `json:"created"`
	Failed  int               `json:"failed"`
	Items   []GroupItemResult `json:"items"`
}

type ChangeStatusRequest struct {
	Status model.Status `json:"status" validate:"required,min=1,max=3"`
}

type BoardResponse struct {
	From  string      `json:"from,omitempty"`
	Total int         `json:"total"`
	Days  []model.Day `json:"days"`
}
