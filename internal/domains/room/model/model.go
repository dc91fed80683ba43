package model

import "studyroom/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldCapacity   = "capacity"
	FieldType       = "type"
	FieldStatus     = "status"
	FieldImage      = "image"

	StatusAvailable = "Available"
)

type Room struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	Capacity   int    `db:"capacity"`
	Type       string `db:"type"`
	Status     string `db:"status"`
	Image      string `db:"image"`
	model.Metadata
}
