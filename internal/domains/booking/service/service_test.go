package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	metricsMocks "studyroom/infras/metrics/mocks"
	"studyroom/infras/otel/mocks"
	bookingMocks "studyroom/internal/domains/booking/mocks"
	"studyroom/internal/domains/booking/model"
	"studyroom/internal/domains/booking/model/dto"
	"studyroom/internal/domains/booking/resolver"
	"studyroom/internal/domains/booking/service"
	"studyroom/internal/domains/notification"
	notificationMocks "studyroom/internal/domains/notification/mocks"
	roomDto "studyroom/internal/domains/room/model/dto"
	roomService "studyroom/internal/domains/room/service"
	roomMocks "studyroom/internal/domains/room/service/mocks"
	"studyroom/shared/failure"
	"studyroom/shared/timezone"
)

const (
	roomID = "8a0f3c1e-5b7d-4e2a-9c6f-1d2e3f4a5b6c"
	day    = "2025-03-14"
)

type fixture struct {
	repo      *bookingMocks.MockBooking
	rooms     *roomMocks.MockRoom
	publisher *notificationMocks.MockPublisher
	svc       service.Booking
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		publisher: notificationMocks.NewMockPublisher(ctrl),
	}

	f.svc = service.New(f.repo, f.rooms, f.publisher, metricsMocks.NewRecorder(), mocks.NewOtel())

	return f
}

func request(start, end string) dto.SubmitBookingRequest {
	return dto.SubmitBookingRequest{
		Email:  " Sam@Example.com ",
		RoomID: roomID,
		Date:   day,
		Start:  start,
		End:    end,
	}
}

func (f fixture) roomExists() {
	f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(roomDto.RoomResponse{ID: roomID, RoomNumber: "B-12"}, nil)
}

func TestBookingService_Submit_Accepted(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		from  int
		to    int
	}{
		{name: "empty room", start: "10:00", end: "11:00", from: 600, to: 660},
		{name: "exactly six hours", start: "08:00", end: "14:00", from: 480, to: 840},
		{name: "until midnight", start: "22:00", end: "24:00", from: 1320, to: 1440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.roomExists()

			f.repo.EXPECT().Overlaps(gomock.Any(), roomID, day, tt.from, tt.to).Return(false, nil)
			f.repo.EXPECT().
				Insert(gomock.Any(), gomock.Cond(func(b model.Booking) bool {
					return b.Email == "sam@example.com" && b.StartMinute == tt.from && b.EndMinute == tt.to && b.BookingDate.String() == day
				})).
				Return(nil)
			f.publisher.EXPECT().
				BookingConfirmed(gomock.Any(), gomock.Cond(func(e notification.BookingConfirmed) bool {
					return e.Email == "sam@example.com" && e.RoomNumber == "B-12" && e.Start == tt.start && e.End == tt.end
				}))

			res, err := f.svc.Submit(context.Background(), request(tt.start, tt.end))

			assert.NoError(t, err)
			assert.True(t, res.Accepted())
			assert.Nil(t, res.Conflict)
			assert.Equal(t, "B-12", res.Booking.RoomNumber)
			assert.Equal(t, tt.start, res.Booking.Start)
			assert.Equal(t, tt.end, res.Booking.End)
		})
	}
}

func TestBookingService_Submit_Conflict(t *testing.T) {
	f := newFixture(t)
	f.roomExists()

	f.repo.EXPECT().Overlaps(gomock.Any(), roomID, day, 630, 690).Return(true, nil)
	f.repo.EXPECT().BookingsFor(gomock.Any(), roomID, day).Return([]model.Booking{
		{RoomID: roomID, StartMinute: 600, EndMinute: 660},
	}, nil)

	res, err := f.svc.Submit(context.Background(), request("10:30", "11:30"))

	assert.NoError(t, err)
	assert.False(t, res.Accepted())
	assert.Equal(t, &dto.SuggestionResponse{
		Start:        "11:00",
		End:          "12:00",
		StartDisplay: "11:00 AM",
		EndDisplay:   "12:00 PM",
	}, res.Conflict)
	assert.Equal(t, "This room is booked during that time. Next available slot: 11:00 AM → 12:00 PM", res.Conflict.Message())
}

func TestBookingService_Submit_NoSlotLeft(t *testing.T) {
	f := newFixture(t)
	f.roomExists()

	f.repo.EXPECT().Overlaps(gomock.Any(), roomID, day, 1260, 1440).Return(true, nil)
	f.repo.EXPECT().BookingsFor(gomock.Any(), roomID, day).Return([]model.Booking{
		{StartMinute: 1200, EndMinute: 1380},
	}, nil)

	res, err := f.svc.Submit(context.Background(), request("21:00", "24:00"))

	assert.NoError(t, err)
	assert.True(t, res.Conflict.PastEndOfDay)
	assert.Equal(t, "This room is booked during that time. There is no free slot left on this date.", res.Conflict.Message())
}

func TestBookingService_Submit_LostRace(t *testing.T) {
	f := newFixture(t)
	f.roomExists()

	f.repo.EXPECT().Overlaps(gomock.Any(), roomID, day, 540, 600).Return(false, nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("failed to insert data (booking): %w", &pq.Error{Code: "23P01"}))
	f.repo.EXPECT().BookingsFor(gomock.Any(), roomID, day).Return([]model.Booking{
		{StartMinute: 540, EndMinute: 600},
	}, nil)

	res, err := f.svc.Submit(context.Background(), request("09:00", "10:00"))

	assert.NoError(t, err)
	assert.False(t, res.Accepted())
	assert.Equal(t, "10:00", res.Conflict.Start)
	assert.Equal(t, "11:00", res.Conflict.End)
}

func TestBookingService_Submit_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.SubmitBookingRequest
		setupMock func(f fixture)
		wantMsg   string
		wantCode  int
	}{
		{
			name:     "bad email",
			req:      dto.SubmitBookingRequest{Email: "nobody", RoomID: roomID, Date: day, Start: "10:00", End: "11:00"},
			wantMsg:  "Email must be a valid email address",
			wantCode: 400,
		},
		{
			name:     "bad date",
			req:      dto.SubmitBookingRequest{Email: "sam@example.com", RoomID: roomID, Date: "14/03/2025", Start: "10:00", End: "11:00"},
			wantMsg:  "Invalid date.",
			wantCode: 400,
		},
		{
			name:     "malformed time",
			req:      request("10am", "11:00"),
			wantMsg:  "Invalid time range.",
			wantCode: 400,
		},
		{
			name:      "end before start",
			req:       request("11:00", "10:00"),
			setupMock: func(f fixture) { f.roomExists() },
			wantMsg:   "End time must be after start time.",
			wantCode:  400,
		},
		{
			name:      "six hours and one minute",
			req:       request("08:00", "14:01"),
			setupMock: func(f fixture) { f.roomExists() },
			wantMsg:   "You cannot book more than 6 hours.",
			wantCode:  400,
		},
		{
			name: "unknown room",
			req:  request("10:00", "11:00"),
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(roomDto.RoomResponse{}, roomService.ErrRoomNotFound)
			},
			wantMsg:  "Please choose an existing room.",
			wantCode: 400,
		},
		{
			name: "store failure",
			req:  request("10:00", "11:00"),
			setupMock: func(f fixture) {
				f.roomExists()
				f.repo.EXPECT().Overlaps(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantMsg:  "Internal Server Error",
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			res, err := f.svc.Submit(context.Background(), tt.req)

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, failure.GetMessage(err))
			assert.False(t, res.Accepted())
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("returns the booking email", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldEmail).
			Return(model.Booking{ID: "b-1", Email: "sam@example.com"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		email, err := f.svc.Cancel(context.Background(), "b-1")

		assert.NoError(t, err)
		assert.Equal(t, "sam@example.com", email)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Cancel(context.Background(), "missing")

		assert.ErrorIs(t, err, service.ErrBookingNotFound)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestBookingService_StaffCancel(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b-1"}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected"))

	assert.Error(t, f.svc.StaffCancel(context.Background(), "b-1"))
}

func TestBookingService_History(t *testing.T) {
	t.Run("no email lists nothing", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.History(context.Background(), "  ")

		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("bookings with room numbers", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().History(gomock.Any(), "sam@example.com").Return([]model.RoomBooking{
			{Booking: model.Booking{ID: "b-1", BookingDate: day, StartMinute: 780, EndMinute: 840}, RoomNumber: "B-12"},
		}, nil)

		res, err := f.svc.History(context.Background(), "sam@example.com")

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "B-12", res[0].RoomNumber)
		assert.Equal(t, day, res[0].Date)
		assert.Equal(t, "01:00 PM", res[0].StartDisplay)
		assert.Equal(t, "02:00 PM", res[0].EndDisplay)
	})
}

func TestBookingService_Schedule(t *testing.T) {
	today := timezone.FormatDay(timezone.Now())

	t.Run("invalid date", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Schedule(context.Background(), roomID, "tomorrow")

		assert.ErrorIs(t, err, failure.InvalidDate)
	})

	t.Run("occupied right now", func(t *testing.T) {
		f := newFixture(t)
		f.roomExists()
		f.repo.EXPECT().BookingsFor(gomock.Any(), roomID, today).Return([]model.Booking{
			{ID: "b-1", StartMinute: 0, EndMinute: 1440},
		}, nil)

		res, err := f.svc.Schedule(context.Background(), roomID, "")

		assert.NoError(t, err)
		assert.True(t, res.Today)
		assert.Equal(t, dto.StatusOccupied, res.Status)
		assert.Equal(t, "11:59 PM", res.OccupiedUntil)
	})

	t.Run("another day is never occupied", func(t *testing.T) {
		f := newFixture(t)
		f.roomExists()
		f.repo.EXPECT().BookingsFor(gomock.Any(), roomID, "2000-01-01").Return([]model.Booking{
			{ID: "b-1", StartMinute: 0, EndMinute: 1440},
		}, nil)

		res, err := f.svc.Schedule(context.Background(), roomID, "2000-01-01")

		assert.NoError(t, err)
		assert.False(t, res.Today)
		assert.Equal(t, dto.StatusAvailable, res.Status)
		assert.Len(t, res.Bookings, 1)
	})
}

func TestBookingService_Board(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomDto.GetRoomsResponse{
		Rooms: []roomDto.RoomResponse{
			{ID: "r-1", RoomNumber: "A-01", Capacity: 2},
			{ID: "r-2", RoomNumber: "A-02", Capacity: 6},
		},
	}, nil)
	f.repo.EXPECT().ActiveAt(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{
		{RoomID: "r-2", StartMinute: 600, EndMinute: 1020},
	}, nil)

	res, err := f.svc.Board(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Available", res[0].Status())
	assert.Equal(t, "Occupied until 05:00 PM", res[1].Status())
}

func TestSuggestionMessage(t *testing.T) {
	var suggestion dto.SuggestionResponse
	suggestion.FromSuggestion(resolver.NextFreeSlot(resolver.Interval{Start: 600, End: 660}, nil))

	assert.Equal(t, "10:00", suggestion.Start)
	assert.False(t, suggestion.PastEndOfDay)
}
