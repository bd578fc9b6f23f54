package dto

import (
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
)

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in checked_out cancelled rejected"`
}

type BookingResponse struct {
	ID        string   `json:"id"`
	GuestName string   `json:"guest_name"`
	Status    string   `json:"status"`
	CheckIn   string   `json:"check_in"`
	CheckOut  string   `json:"check_out"`
	RoomIDs   []string `json:"room_ids"`
	// EventsQueued counts the pricing events enqueued by the change.
	EventsQueued int `json:"events_queued"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking, roomIDs []string) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.Status = model.Status
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.RoomIDs = roomIDs
	r.Metadata.FromModel(model.Metadata)
}
