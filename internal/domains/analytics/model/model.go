package model

import "studyroom/shared/model"

const (
	EntityName = "analytics"

	BookingTable = "bookings"
	RoomTable    = "rooms"

	FieldTotal      = "total"
	FieldTotalHours = "total_hours"
)

type RoomTotal struct {
	RoomNumber string `db:"room_number"`
	Total      int    `db:"total"`
}

type RoomHours struct {
	RoomNumber string  `db:"room_number"`
	TotalHours float64 `db:"total_hours"`
}

type StartTotal struct {
	StartMinute int `db:"start_minute"`
	Total       int `db:"total"`
}

type DayTotal struct {
	BookingDate model.Day `db:"booking_date"`
	Total       int       `db:"total"`
}
