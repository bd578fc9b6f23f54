package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldGuestName = "guest_name"
	FieldStatus    = "status"
	FieldCheckIn   = "check_in"
	FieldCheckOut  = "check_out"

	RoomTableName  = "booking_rooms"
	RoomEntityName = "booking_room"

	FieldBookingID = "booking_id"
	FieldRoomID    = "room_id"
	FieldQuantity  = "quantity"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
	StatusRejected   = "rejected"
)

// Booking is one reservation; the nights it covers are [CheckIn, CheckOut).
type Booking struct {
	ID        string    `db:"id"`
	GuestName string    `db:"guest_name"`
	Status    string    `db:"status"`
	CheckIn   time.Time `db:"check_in"`
	CheckOut  time.Time `db:"check_out"`
	model.Metadata
}

type BookingRoom struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	RoomID    string `db:"room_id"`
	Quantity  int    `db:"quantity"`
}

// HoldsInventory reports whether bookings in this status consume allotment.
func HoldsInventory(status string) bool {
	return status != StatusCancelled && status != StatusRejected
}
