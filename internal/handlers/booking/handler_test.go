package booking_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studyroom/infras/otel/mocks"
	"studyroom/internal/domains/booking/model/dto"
	bookingMocks "studyroom/internal/domains/booking/service/mocks"
	roomDto "studyroom/internal/domains/room/model/dto"
	roomMocks "studyroom/internal/domains/room/service/mocks"
	"studyroom/internal/handlers/booking"
	"studyroom/internal/views"
	"studyroom/shared/failure"
)

const (
	roomID    = "8a0f3c1e-5b7d-4e2a-9c6f-1d2e3f4a5b6c"
	bookingID = "2b9d7e61-3c4f-4a8b-9d0e-6f1a2b3c4d5e"
)

type fixture struct {
	bookings *bookingMocks.MockBooking
	rooms    *roomMocks.MockRoom
	router   chi.Router
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		bookings: bookingMocks.NewMockBooking(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		router:   chi.NewRouter(),
	}

	handler := booking.New(f.bookings, f.rooms, views.New(), mocks.NewOtel())
	handler.Pages(f.router)
	handler.StaffPages(f.router)
	f.router.Route("/api/v1", handler.Router)

	return f
}

func (f fixture) expectRooms() {
	f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomDto.GetRoomsResponse{
		Rooms: []roomDto.RoomResponse{{ID: roomID, RoomNumber: "101", Capacity: 4, Type: "Group"}},
	}, nil)
}

func (f fixture) serve(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request

	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func bookingForm() url.Values {
	return url.Values{
		"email": {"sam@example.com"},
		"room":  {roomID},
		"date":  {"2025-03-14"},
		"start": {"10:30"},
		"end":   {"11:30"},
	}
}

func TestBookingForm(t *testing.T) {
	f := newFixture(t)
	f.expectRooms()

	rec := f.serve(http.MethodGet, "/book?room_id="+roomID, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<option value="`+roomID+`" selected>101 (4 seats, Group)</option>`)
}

func TestSubmitBooking(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f fixture)
		status   int
		location string
		contains []string
	}{
		{
			name: "accepted booking redirects to the history",
			setup: func(f fixture) {
				f.bookings.EXPECT().Submit(gomock.Any(), dto.SubmitBookingRequest{
					Email: "sam@example.com", RoomID: roomID, Date: "2025-03-14", Start: "10:30", End: "11:30",
				}).Return(dto.SubmitBookingResponse{Booking: &dto.BookingResponse{ID: bookingID, Email: "sam@example.com"}}, nil)
			},
			status:   http.StatusSeeOther,
			location: "/history?email=sam%40example.com&msg=success",
		},
		{
			name: "collision shows the next free slot",
			setup: func(f fixture) {
				f.bookings.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitBookingResponse{
					Conflict: &dto.SuggestionResponse{Start: "11:00", End: "12:00", StartDisplay: "11:00 AM", EndDisplay: "12:00 PM"},
				}, nil)
				f.expectRooms()
			},
			status:   http.StatusConflict,
			contains: []string{"Next available slot", "11:00 AM", "12:00 PM"},
		},
		{
			name: "collision at the end of the day has no slot",
			setup: func(f fixture) {
				f.bookings.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitBookingResponse{
					Conflict: &dto.SuggestionResponse{PastEndOfDay: true},
				}, nil)
				f.expectRooms()
			},
			status:   http.StatusConflict,
			contains: []string{"There is no free slot left on this date."},
		},
		{
			name: "invalid request re-renders the form",
			setup: func(f fixture) {
				f.bookings.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitBookingResponse{}, failure.EndBeforeStart)
				f.expectRooms()
			},
			status:   http.StatusBadRequest,
			contains: []string{"End time must be after start time.", `value="10:30"`},
		},
		{
			name: "store failure shows the error page",
			setup: func(f fixture) {
				f.bookings.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitBookingResponse{}, errors.New("db down"))
			},
			status:   http.StatusInternalServerError,
			contains: []string{"Something went wrong", "Internal Server Error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			rec := f.serve(http.MethodPost, "/submit-booking", bookingForm())

			assert.Equal(t, tt.status, rec.Code)

			if tt.location != "" {
				assert.Equal(t, tt.location, rec.Header().Get("Location"))
			}

			for _, fragment := range tt.contains {
				assert.Contains(t, rec.Body.String(), fragment)
			}
		})
	}
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	f.bookings.EXPECT().History(gomock.Any(), "sam@example.com").Return([]dto.BookingResponse{
		{ID: bookingID, RoomNumber: "101", Date: "2025-03-14", StartDisplay: "10:00 AM", EndDisplay: "11:00 AM"},
	}, nil)

	rec := f.serve(http.MethodGet, "/history?email=sam%40example.com&msg=success", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your booking is confirmed.")
	assert.Contains(t, rec.Body.String(), "/cancel/"+bookingID)
}

func TestCancelBooking(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(f fixture)
		status   int
		location string
	}{
		{
			name:   "cancelled booking returns to the owner's history",
			target: "/cancel/" + bookingID,
			setup: func(f fixture) {
				f.bookings.EXPECT().Cancel(gomock.Any(), bookingID).Return("sam@example.com", nil)
			},
			status:   http.StatusSeeOther,
			location: "/history?email=sam%40example.com&msg=deleted",
		},
		{
			name:     "malformed id changes nothing",
			target:   "/cancel/42",
			setup:    func(_ fixture) {},
			status:   http.StatusSeeOther,
			location: "/history",
		},
		{
			name:   "unknown booking changes nothing",
			target: "/cancel/" + bookingID,
			setup: func(f fixture) {
				f.bookings.EXPECT().Cancel(gomock.Any(), bookingID).Return("", failure.NotFound("Booking"))
			},
			status:   http.StatusSeeOther,
			location: "/history",
		},
		{
			name:   "store failure shows the error page",
			target: "/cancel/" + bookingID,
			setup: func(f fixture) {
				f.bookings.EXPECT().Cancel(gomock.Any(), bookingID).Return("", errors.New("db down"))
			},
			status: http.StatusInternalServerError,
		},
		{
			name:   "staff cancellation returns to the dashboard",
			target: "/staff/cancel/" + bookingID,
			setup: func(f fixture) {
				f.bookings.EXPECT().StaffCancel(gomock.Any(), bookingID).Return(nil)
			},
			status:   http.StatusSeeOther,
			location: "/staff-dashboard",
		},
		{
			name:   "staff cancellation of an unknown booking is ignored",
			target: "/staff/cancel/" + bookingID,
			setup: func(f fixture) {
				f.bookings.EXPECT().StaffCancel(gomock.Any(), bookingID).Return(failure.NotFound("Booking"))
			},
			status:   http.StatusSeeOther,
			location: "/staff-dashboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			rec := f.serve(http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestCreateBooking(t *testing.T) {
	body := `{"email":"sam@example.com","room_id":"` + roomID + `","date":"2025-03-14","start_time":"10:30","end_time":"11:30"}`

	tests := []struct {
		name     string
		body     string
		setup    func(f fixture)
		status   int
		contains string
	}{
		{
			name: "accepted",
			body: body,
			setup: func(f fixture) {
				f.bookings.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitBookingResponse{
					Booking: &dto.BookingResponse{ID: bookingID},
				}, nil)
			},
			status:   http.StatusCreated,
			contains: bookingID,
		},
		{
			name: "conflict carries the suggestion",
			body: body,
			setup: func(f fixture) {
				f.bookings.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitBookingResponse{
					Conflict: &dto.SuggestionResponse{Start: "11:00", End: "12:00"},
				}, nil)
			},
			status:   http.StatusConflict,
			contains: `"start_time":"11:00"`,
		},
		{
			name:   "malformed body",
			body:   `{"email":`,
			setup:  func(_ fixture) {},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestGetBookingsReturnsEmptyList(t *testing.T) {
	f := newFixture(t)
	f.bookings.EXPECT().History(gomock.Any(), "nobody@example.com").Return(nil, nil)

	rec := f.serve(http.MethodGet, "/api/v1/bookings?email=nobody%40example.com", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}
