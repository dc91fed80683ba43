package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"studyroom/infras/metrics"
	"studyroom/infras/otel"
	"studyroom/internal/domains/booking/model"
	"studyroom/internal/domains/booking/model/dto"
	"studyroom/internal/domains/booking/repository"
	"studyroom/internal/domains/booking/resolver"
	"studyroom/internal/domains/notification"
	roomModel "studyroom/internal/domains/room/model"
	roomService "studyroom/internal/domains/room/service"
	"studyroom/shared"
	"studyroom/shared/constant"
	gDto "studyroom/shared/dto"
	"studyroom/shared/failure"
	gRepo "studyroom/shared/repository"
	"studyroom/shared/timezone"
	"studyroom/shared/validator"

	"github.com/rs/zerolog/log"
)

const recentLimit = 20

var (
	ErrBookingNotFound = failure.NotFound("Booking not found.")
	ErrUnknownRoom     = failure.BadRequestFromString("Please choose an existing room.")
)

type Booking interface {
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (dto.SubmitBookingResponse, error)
	Cancel(ctx context.Context, id string) (email string, err error)
	StaffCancel(ctx context.Context, id string) error
	History(ctx context.Context, email string) ([]dto.BookingResponse, error)
	Recent(ctx context.Context) ([]dto.BookingResponse, error)
	Schedule(ctx context.Context, roomID, date string) (dto.RoomScheduleResponse, error)
	Board(ctx context.Context) ([]dto.RoomStatusResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	rooms     roomService.Room
	resolver  *resolver.Resolver
	publisher notification.Publisher
	metrics   metrics.Recorder
	otel      otel.Otel
}

func New(repo repository.Booking, rooms roomService.Room, publisher notification.Publisher, recorder metrics.Recorder, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		resolver:  resolver.New(repo, otel),
		publisher: publisher,
		metrics:   recorder,
		otel:      otel,
	}
}

// Submit validates the request, resolves it against the room's day and stores it when free.
// A conflict is not an error: the response carries the suggested slot instead.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (res dto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defer func() {
		switch {
		case err != nil && failure.GetCode(err) < 500:
			s.metrics.BookingSubmitted(metrics.OutcomeRejected)
		case res.Conflict != nil:
			s.metrics.BookingSubmitted(metrics.OutcomeConflict)
		case res.Booking != nil:
			s.metrics.BookingSubmitted(metrics.OutcomeAccepted)
		}
	}()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	room, err := s.rooms.Get(ctx, req.RoomID)
	if failure.IsNotFound(err) {
		return res, ErrUnknownRoom
	}

	if err != nil {
		return res, fmt.Errorf("failed to get room: %w", err)
	}

	outcome, err := s.resolver.Resolve(ctx, req.RoomID, req.Date, req.Start, req.End)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !outcome.Free {
		return conflict(outcome.Suggestion), nil
	}

	booking := req.ToModel(outcome.Requested, timezone.Now())

	if err = s.repo.Insert(ctx, booking); err != nil {
		return s.insertFailed(ctx, req, outcome.Requested, err)
	}

	scope.AddEvent("booking stored")

	s.publisher.BookingConfirmed(ctx, notification.BookingConfirmed{
		BookingID:  booking.ID,
		Email:      booking.Email,
		RoomNumber: room.RoomNumber,
		Date:       booking.BookingDate.String(),
		Start:      booking.StartTime(),
		End:        booking.EndTime(),
	})

	res.Booking = &dto.BookingResponse{}
	res.Booking.FromModel(booking)
	res.Booking.RoomNumber = room.RoomNumber

	return res, nil
}

// insertFailed turns a lost race on the no-overlap constraint into the usual conflict answer.
func (s *serviceImpl) insertFailed(ctx context.Context, req dto.SubmitBookingRequest, requested resolver.Interval, err error) (dto.SubmitBookingResponse, error) {
	switch {
	case gRepo.IsViolation(err, constant.PqErrorCodeExclusionViolation):
		log.Warn().Str("room_id", req.RoomID).Str("date", req.Date).Msg("booking lost an overlap race")

		suggestion, suggestErr := s.resolver.Suggest(ctx, req.RoomID, req.Date, requested)
		if suggestErr != nil {
			return dto.SubmitBookingResponse{}, suggestErr //nolint:wrapcheck
		}

		return conflict(suggestion), nil
	case gRepo.IsViolation(err, constant.PqErrorCodeFkViolation):
		return dto.SubmitBookingResponse{}, ErrUnknownRoom
	default:
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to store booking")

		return dto.SubmitBookingResponse{}, fmt.Errorf("failed to store booking: %w", err)
	}
}

func conflict(suggestion resolver.Suggestion) dto.SubmitBookingResponse {
	res := dto.SubmitBookingResponse{Conflict: &dto.SuggestionResponse{}}
	res.Conflict.FromSuggestion(suggestion)

	return res
}

// Cancel deletes a booking on the visitor's request and returns the email it was made with.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (email string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.delete(ctx, id)
	if err != nil {
		return constant.Empty, err
	}

	s.metrics.BookingCancelled(false)

	return booking.Email, nil
}

// StaffCancel deletes any booking. Callers must have passed the staff gate.
func (s *serviceImpl) StaffCancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.StaffCancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.delete(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	log.Info().Str("booking_id", booking.ID).Str("staff", user).Msg("booking cancelled by staff")

	s.metrics.BookingCancelled(true)

	return nil
}

func (s *serviceImpl) delete(ctx context.Context, id string) (model.Booking, error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldEmail)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, ErrBookingNotFound
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to delete booking")

		return booking, fmt.Errorf("failed to delete booking: %w", err)
	}

	return booking, nil
}

// History lists the bookings made with email. An empty email lists nothing.
func (s *serviceImpl) History(ctx context.Context, email string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.History")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email = strings.TrimSpace(email)
	if email == constant.Empty {
		return nil, nil
	}

	bookings, err := s.repo.History(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking history: %w", err)
	}

	return dto.FromRoomBookings(bookings), nil
}

// Recent lists the latest bookings for the staff dashboard.
func (s *serviceImpl) Recent(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Recent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	return dto.FromRoomBookings(bookings), nil
}

// Schedule lists a room's bookings on date; an empty date means today.
func (s *serviceImpl) Schedule(ctx context.Context, roomID, date string) (res dto.RoomScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Schedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	today := timezone.FormatDay(now)

	if date == constant.Empty {
		date = today
	}

	if _, err = timezone.ParseDay(date); err != nil {
		return res, failure.InvalidDate
	}

	res.Room, err = s.rooms.Get(ctx, roomID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	bookings, err := s.repo.BookingsFor(ctx, roomID, date)
	if err != nil {
		return res, fmt.Errorf("failed to get room schedule: %w", err)
	}

	res.Date = date
	res.Today = date == today
	res.Status = dto.StatusAvailable
	res.Bookings = make([]dto.BookingResponse, len(bookings))

	minute := timezone.MinuteOfDay(now)

	for i, booking := range bookings {
		res.Bookings[i].FromModel(booking)

		if res.Today && booking.StartMinute <= minute && minute < booking.EndMinute {
			res.Status = dto.StatusOccupied
			res.OccupiedUntil = res.Bookings[i].EndDisplay
		}
	}

	return res, nil
}

// Board lists every room with its live occupancy.
func (s *serviceImpl) Board(ctx context.Context) (res []dto.RoomStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Board")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldRoomNumber, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	now := timezone.Now()

	active, err := s.repo.ActiveAt(ctx, timezone.FormatDay(now), timezone.MinuteOfDay(now))
	if err != nil {
		return nil, fmt.Errorf("failed to get active bookings: %w", err)
	}

	occupiedUntil := make(map[string]string, len(active))
	for _, booking := range active {
		var view dto.BookingResponse
		view.FromModel(booking)
		occupiedUntil[booking.RoomID] = view.EndDisplay
	}

	res = make([]dto.RoomStatusResponse, len(rooms.Rooms))
	for i, room := range rooms.Rooms {
		until, occupied := occupiedUntil[room.ID]

		res[i] = dto.RoomStatusResponse{
			ID:            room.ID,
			RoomNumber:    room.RoomNumber,
			Capacity:      room.Capacity,
			Type:          room.Type,
			Occupied:      occupied,
			OccupiedUntil: until,
		}
	}

	return res, nil
}
