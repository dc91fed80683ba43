package views_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	analyticsDto "studyroom/internal/domains/analytics/model/dto"
	bookingDto "studyroom/internal/domains/booking/model/dto"
	roomDto "studyroom/internal/domains/room/model/dto"
	"studyroom/internal/views"
	"studyroom/shared/constant"
)

func render(t *testing.T, page string, data any, staff string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if staff != "" {
		req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, staff))
	}

	rec := httptest.NewRecorder()
	views.New().Render(rec, req, http.StatusOK, page, "Test", data)

	return rec
}

func TestRender(t *testing.T) {
	room := roomDto.RoomResponse{ID: "room-1", RoomNumber: "101", Capacity: 4, Type: "Group", Status: "Available"}
	booking := bookingDto.BookingResponse{
		ID: "b-1", Email: "ana@campus.edu", RoomNumber: "101", Date: "2024-03-01",
		Start: "10:00", End: "11:00", StartDisplay: "10:00 AM", EndDisplay: "11:00 AM",
	}

	tests := []struct {
		name     string
		page     string
		data     any
		contains []string
	}{
		{name: "index", page: views.PageIndex, contains: []string{"Study Room Tracker"}},
		{
			name: "rooms board",
			page: views.PageRooms,
			data: []bookingDto.RoomStatusResponse{
				{ID: "room-1", RoomNumber: "101", Capacity: 4, Type: "Group"},
				{ID: "room-2", RoomNumber: "102", Occupied: true, OccupiedUntil: "11:00 AM"},
			},
			contains: []string{"Available", "Occupied until 11:00 AM", `href="/room/room-1"`},
		},
		{
			name: "room details occupied",
			page: views.PageRoomDetails,
			data: bookingDto.RoomScheduleResponse{
				Room: room, Date: "2024-03-01", Today: true, Status: bookingDto.StatusOccupied,
				OccupiedUntil: "11:00 AM", Bookings: []bookingDto.BookingResponse{booking},
			},
			contains: []string{"Room 101", "Occupied until 11:00 AM", "10:00 AM"},
		},
		{
			name: "booking conflict",
			page: views.PageBooking,
			data: views.BookingForm{
				Rooms:    []roomDto.RoomResponse{room},
				Form:     bookingDto.SubmitBookingRequest{RoomID: "room-1", Email: "ana@campus.edu"},
				Conflict: &bookingDto.SuggestionResponse{StartDisplay: "11:00 AM", EndDisplay: "12:00 PM"},
			},
			contains: []string{"This room is booked during that time.", "11:00 AM → 12:00 PM", `value="room-1" selected`},
		},
		{
			name: "booking no slot left",
			page: views.PageBooking,
			data: views.BookingForm{Conflict: &bookingDto.SuggestionResponse{PastEndOfDay: true}},
			contains: []string{"There is no free slot left on this date."},
		},
		{
			name: "booking validation error",
			page: views.PageBooking,
			data: views.BookingForm{Error: "You cannot book more than 6 hours."},
			contains: []string{"You cannot book more than 6 hours."},
		},
		{
			name:     "history after booking",
			page:     views.PageHistory,
			data:     views.History{Email: "ana@campus.edu", Msg: constant.MessageSuccess, Bookings: []bookingDto.BookingResponse{booking}},
			contains: []string{"Your booking is confirmed", `href="/cancel/b-1"`},
		},
		{
			name:     "history empty",
			page:     views.PageHistory,
			data:     views.History{Email: "bo@campus.edu", Msg: constant.MessageDeleted},
			contains: []string{"has been cancelled", "No bookings found for bo@campus.edu"},
		},
		{
			name:     "staff login error",
			page:     views.PageStaffLogin,
			data:     views.StaffLogin{Username: "librarian", Error: "Invalid username or password."},
			contains: []string{"Invalid username or password.", `value="librarian"`},
		},
		{
			name: "dashboard",
			page: views.PageStaffDashboard,
			data: analyticsDto.DashboardResponse{
				BookingsToday: 3, RoomsCount: 5,
				MostBooked: &analyticsDto.RoomTotalResponse{RoomNumber: "101", Total: 9},
				Recent:     []bookingDto.BookingResponse{booking},
			},
			contains: []string{"101 (9)", `href="/staff/cancel/b-1"`},
		},
		{
			name:     "manage rooms",
			page:     views.PageManageRooms,
			data:     []roomDto.RoomResponse{room},
			contains: []string{`href="/edit-room/room-1"`, `href="/delete-room/room-1"`},
		},
		{
			name:     "add room",
			page:     views.PageRoomForm,
			data:     views.RoomForm{},
			contains: []string{"Add a room", `action="/add-room"`},
		},
		{
			name:     "edit room",
			page:     views.PageRoomForm,
			data:     views.RoomForm{ID: "room-1", RoomNumber: "101", Capacity: 4, Status: "Closed"},
			contains: []string{"Edit room 101", `action="/edit-room/room-1"`, `value="Closed"`},
		},
		{
			name: "analytics",
			page: views.PageAnalytics,
			data: analyticsDto.ReportResponse{
				HoursPerRoom: []analyticsDto.RoomHoursResponse{{RoomNumber: "101", Hours: 4.5}},
				StartTimes:   []analyticsDto.StartTotalResponse{{StartDisplay: "02:30 PM", Total: 2}},
			},
			contains: []string{"4.5", "02:30 PM"},
		},
		{
			name:     "filter",
			page:     views.PageFilter,
			data:     views.Filter{Error: "Invalid time range."},
			contains: []string{"Invalid time range."},
		},
		{
			name:     "filter results empty",
			page:     views.PageFilterResults,
			data:     views.FilterResults{Filter: views.Filter{Date: "2024-03-01", Start: "10:00", End: "11:00", MinCapacity: 8}},
			contains: []string{"Rooms free on 2024-03-01", "at least 8 seats"},
		},
		{
			name:     "error",
			page:     views.PageError,
			data:     views.Error{Message: "Room not found."},
			contains: []string{"Room not found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := render(t, tt.page, tt.data, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, constant.ContentTypeHTML, rec.Header().Get(constant.RequestHeaderContentType))

			for _, want := range tt.contains {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestRender_StaffNavigation(t *testing.T) {
	assert.Contains(t, render(t, views.PageIndex, nil, "").Body.String(), `href="/staff-login"`)

	body := render(t, views.PageIndex, nil, "librarian").Body.String()
	assert.Contains(t, body, "Log out librarian")
	assert.NotContains(t, body, `href="/staff-login"`)
}

func TestRender_UnknownPage(t *testing.T) {
	rec := render(t, "missing.html", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRoomForm(t *testing.T) {
	assert.False(t, views.RoomForm{}.Editing())
	assert.Equal(t, "/add-room", views.RoomForm{}.Action())
	assert.Equal(t, "/edit-room/r-9", views.RoomForm{ID: "r-9"}.Action())
}
