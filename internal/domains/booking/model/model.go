package model

import (
	"studyroom/shared/model"
	"studyroom/shared/wallclock"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldEmail       = "email"
	FieldRoomID      = "room_id"
	FieldBookingDate = "booking_date"
	FieldStartMinute = "start_minute"
	FieldEndMinute   = "end_minute"

	RoomTable       = "rooms"
	FieldRoomNumber = "room_number"
)

// Booking reserves [StartMinute, EndMinute) of one room on one date. Rows are
// never updated; a change of plan is a delete plus a new booking.
type Booking struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	RoomID      string    `db:"room_id"`
	BookingDate model.Day `db:"booking_date"`
	StartMinute int       `db:"start_minute"`
	EndMinute   int       `db:"end_minute"`
	model.Metadata
}

func (b Booking) StartTime() string {
	return wallclock.FormatMinutes(b.StartMinute)
}

// EndTime renders the exclusive end; a booking running to midnight shows "24:00".
func (b Booking) EndTime() string {
	if b.EndMinute >= wallclock.MinutesPerDay {
		return wallclock.EndOfDay
	}

	return wallclock.FormatMinutes(b.EndMinute)
}

// RoomBooking is a booking read together with the number of its room.
type RoomBooking struct {
	Booking
	RoomNumber string `db:"room_number" table:"rooms"`
}

func (RoomBooking) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id"
}
