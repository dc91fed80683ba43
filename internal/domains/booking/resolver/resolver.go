package resolver

//go:generate go run go.uber.org/mock/mockgen -source=./resolver.go -destination=./mocks/resolver_mock.go -package=mocks

import (
	"context"
	"fmt"

	"studyroom/infras/otel"
	"studyroom/internal/domains/booking/model"
	"studyroom/shared/constant"

	"github.com/rs/zerolog/log"
)

// Store is the part of the booking store the resolver reads.
type Store interface {
	Overlaps(ctx context.Context, roomID, date string, start, end int) (bool, error)
	BookingsFor(ctx context.Context, roomID, date string) ([]model.Booking, error)
}

// Outcome is Free, or carries the suggested alternative.
type Outcome struct {
	Requested  Interval
	Free       bool
	Suggestion Suggestion
}

type Resolver struct {
	store Store
	otel  otel.Otel
}

func New(store Store, otel otel.Otel) *Resolver {
	return &Resolver{
		store: store,
		otel:  otel,
	}
}

// Resolve validates the request and checks it against the room's bookings on date.
// Validation failures are returned as errors; a conflict is a normal Outcome.
func (r *Resolver) Resolve(ctx context.Context, roomID, date, start, end string) (out Outcome, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resolver.Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	requested, err := Validate(start, end)
	if err != nil {
		return out, err
	}

	out.Requested = requested

	overlaps, err := r.store.Overlaps(ctx, roomID, date, requested.Start, requested.End)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Str("date", date).Msg("failed to check overlapping bookings")

		return out, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if !overlaps {
		out.Free = true

		return out, nil
	}

	out.Suggestion, err = r.Suggest(ctx, roomID, date, requested)

	return out, err
}

// Suggest computes the next free slot for requested from the room's current bookings.
func (r *Resolver) Suggest(ctx context.Context, roomID, date string, requested Interval) (Suggestion, error) {
	bookings, err := r.store.BookingsFor(ctx, roomID, date)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Str("date", date).Msg("failed to list bookings")

		return Suggestion{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	taken := make([]Interval, len(bookings))
	for i, booking := range bookings {
		taken[i] = Interval{Start: booking.StartMinute, End: booking.EndMinute}
	}

	return NextFreeSlot(requested, taken), nil
}
