package views

import (
	bookingDto "studyroom/internal/domains/booking/model/dto"
	roomDto "studyroom/internal/domains/room/model/dto"
)

type BookingForm struct {
	Rooms    []roomDto.RoomResponse
	Form     bookingDto.SubmitBookingRequest
	Error    string
	Conflict *bookingDto.SuggestionResponse
}

// History lists one visitor's bookings. Msg carries the outcome of the redirect that led here.
type History struct {
	Email    string
	Msg      string
	Bookings []bookingDto.BookingResponse
}

type StaffLogin struct {
	Username string
	Error    string
}

// RoomForm backs both the add and the edit page; ID is empty when adding.
type RoomForm struct {
	ID         string
	RoomNumber string
	Capacity   int
	Type       string
	Status     string
	Image      string
	Error      string
}

func (f RoomForm) Editing() bool {
	return f.ID != ""
}

func (f RoomForm) Action() string {
	if f.Editing() {
		return "/edit-room/" + f.ID
	}

	return "/add-room"
}

type Filter struct {
	Date        string
	Start       string
	End         string
	MinCapacity int
	Error       string
}

type FilterResults struct {
	Filter
	Rooms []roomDto.RoomResponse
}

type Error struct {
	Message string
}
