package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"studyroom/infras/otel"
	"studyroom/internal/domains/analytics/model/dto"
	"studyroom/internal/domains/analytics/repository"
	bookingService "studyroom/internal/domains/booking/service"
	"studyroom/shared/constant"
	"studyroom/shared/timezone"

	"golang.org/x/sync/errgroup"
)

type Analytics interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	Report(ctx context.Context) (dto.ReportResponse, error)
}

type serviceImpl struct {
	repo     repository.Analytics
	bookings bookingService.Booking
	otel     otel.Otel
}

func New(repo repository.Analytics, bookings bookingService.Booking, otel otel.Otel) Analytics {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		otel:     otel,
	}
}

// Dashboard gathers the staff landing page figures. Counts are taken against the
// current local date and minute.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".analytics.Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	today := timezone.FormatDay(now)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		res.BookingsToday, err = s.repo.BookingsOn(gctx, today)

		return err
	})

	group.Go(func() (err error) {
		res.ActiveNow, err = s.repo.ActiveAt(gctx, today, timezone.MinuteOfDay(now))

		return err
	})

	group.Go(func() (err error) {
		res.RoomsCount, err = s.repo.RoomCount(gctx)

		return err
	})

	group.Go(func() error {
		top, err := s.repo.BookingsPerRoom(gctx, 1)
		if err != nil {
			return err
		}

		if len(top) > 0 {
			res.MostBooked = &dto.FromRoomTotals(top)[0]
		}

		return nil
	})

	group.Go(func() (err error) {
		res.Recent, err = s.bookings.Recent(gctx)

		return err
	})

	if err = group.Wait(); err != nil {
		return dto.DashboardResponse{}, fmt.Errorf("failed to build dashboard: %w", err)
	}

	return res, nil
}

// Report gathers the usage tables of the analytics page.
func (s *serviceImpl) Report(ctx context.Context) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".analytics.Report")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		rows, err := s.repo.BookingsPerRoom(gctx, 0)
		res.BookingsPerRoom = dto.FromRoomTotals(rows)

		return err
	})

	group.Go(func() error {
		rows, err := s.repo.HoursPerRoom(gctx)
		res.HoursPerRoom = dto.FromRoomHours(rows)

		return err
	})

	group.Go(func() error {
		rows, err := s.repo.StartTimes(gctx)
		res.StartTimes = dto.FromStartTotals(rows)

		return err
	})

	group.Go(func() error {
		rows, err := s.repo.BookingsPerDay(gctx)
		res.BookingsPerDay = dto.FromDayTotals(rows)

		return err
	})

	if err = group.Wait(); err != nil {
		return dto.ReportResponse{}, fmt.Errorf("failed to build analytics report: %w", err)
	}

	return res, nil
}
