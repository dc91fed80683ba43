package dto

import (
	"fmt"
	"strings"
	"time"

	"studyroom/internal/domains/booking/model"
	"studyroom/internal/domains/booking/resolver"
	roomDto "studyroom/internal/domains/room/model/dto"
	gModel "studyroom/shared/model"
	"studyroom/shared/wallclock"

	"github.com/google/uuid"
)

const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"

	conflictPrefix = "This room is booked during that time."
)

type SubmitBookingRequest struct {
	Email  string `json:"email"      validate:"required,email,max=255"`
	RoomID string `json:"room_id"    validate:"required,uuid"`
	Date   string `json:"date"       validate:"required,day"`
	Start  string `json:"start_time" validate:"required,clock"`
	End    string `json:"end_time"   validate:"required,clock"`
}

// Normalize trims the form values and lowercases the email, which is the visitor's only identity.
func (r *SubmitBookingRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.RoomID = strings.TrimSpace(r.RoomID)
	r.Date = strings.TrimSpace(r.Date)
	r.Start = strings.TrimSpace(r.Start)
	r.End = strings.TrimSpace(r.End)
}

func (r *SubmitBookingRequest) ToModel(slot resolver.Interval, now time.Time) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		Email:       r.Email,
		RoomID:      r.RoomID,
		BookingDate: gModel.Day(r.Date),
		StartMinute: slot.Start,
		EndMinute:   slot.End,
		Metadata:    gModel.NewMetadata(r.Email, now),
	}
}

// SuggestionResponse is the next free slot offered after a conflict.
type SuggestionResponse struct {
	Start        string `json:"start_time"`
	End          string `json:"end_time"`
	StartDisplay string `json:"start_display"`
	EndDisplay   string `json:"end_display"`
	PastEndOfDay bool   `json:"past_end_of_day"`
}

func (s *SuggestionResponse) FromSuggestion(suggestion resolver.Suggestion) {
	s.Start = wallclock.FormatMinutes(suggestion.Start)
	s.End = wallclock.FormatMinutes(suggestion.End)
	s.StartDisplay = suggestion.StartDisplay()
	s.EndDisplay = suggestion.EndDisplay()
	s.PastEndOfDay = suggestion.PastEndOfDay
}

// Message is the sentence shown to the visitor on the booking form.
func (s SuggestionResponse) Message() string {
	if s.PastEndOfDay {
		return conflictPrefix + " There is no free slot left on this date."
	}

	return fmt.Sprintf("%s Next available slot: %s → %s", conflictPrefix, s.StartDisplay, s.EndDisplay)
}

// SubmitBookingResponse holds either the stored booking or the conflict suggestion.
type SubmitBookingResponse struct {
	Booking  *BookingResponse    `json:"booking,omitempty"`
	Conflict *SuggestionResponse `json:"conflict,omitempty"`
}

func (r SubmitBookingResponse) Accepted() bool {
	return r.Booking != nil
}

type BookingResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	RoomID       string `json:"room_id"`
	RoomNumber   string `json:"room_number,omitempty"`
	Date         string `json:"date"`
	Start        string `json:"start_time"`
	End          string `json:"end_time"`
	StartDisplay string `json:"start_display"`
	EndDisplay   string `json:"end_display"`
}

func (b *BookingResponse) FromModel(booking model.Booking) {
	b.ID = booking.ID
	b.Email = booking.Email
	b.RoomID = booking.RoomID
	b.Date = booking.BookingDate.String()
	b.Start = booking.StartTime()
	b.End = booking.EndTime()
	b.StartDisplay = wallclock.DisplayMinutes(booking.StartMinute)
	b.EndDisplay = wallclock.DisplayMinutes(booking.EndMinute)
}

func (b *BookingResponse) FromRoomBooking(booking model.RoomBooking) {
	b.FromModel(booking.Booking)
	b.RoomNumber = booking.RoomNumber
}

func FromRoomBookings(bookings []model.RoomBooking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromRoomBooking(booking)
	}

	return res
}

// RoomScheduleResponse is one room's day: its bookings and, for today, whether it is in use right now.
type RoomScheduleResponse struct {
	Room          roomDto.RoomResponse `json:"room"`
	Date          string               `json:"date"`
	Today         bool                 `json:"today"`
	Status        string               `json:"status"`
	OccupiedUntil string               `json:"occupied_until,omitempty"`
	Bookings      []BookingResponse    `json:"bookings"`
}

// RoomStatusResponse is one line of the live rooms board.
type RoomStatusResponse struct {
	ID            string `json:"id"`
	RoomNumber    string `json:"room_number"`
	Capacity      int    `json:"capacity"`
	Type          string `json:"type"`
	Occupied      bool   `json:"occupied"`
	OccupiedUntil string `json:"occupied_until,omitempty"`
}

// Status is "Available" or "Occupied until hh:MM PM".
func (r RoomStatusResponse) Status() string {
	if r.Occupied {
		return "Occupied until " + r.OccupiedUntil
	}

	return "Available"
}
