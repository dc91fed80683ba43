package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"studyroom/infras/otel"
	"studyroom/infras/postgres"
	"studyroom/internal/domains/analytics/model"
	"studyroom/shared/constant"
	gRepo "studyroom/shared/repository"

	"github.com/Masterminds/squirrel"
)

const (
	colRoomID      = model.RoomTable + ".id"
	colRoomNumber  = model.RoomTable + ".room_number"
	colBookingID   = model.BookingTable + ".id"
	colBookingRoom = model.BookingTable + ".room_id"
	colDate        = model.BookingTable + ".booking_date"
	colStart       = model.BookingTable + ".start_minute"
	colEnd         = model.BookingTable + ".end_minute"
	countAll       = "COUNT(*)"
)

// Analytics aggregates booking activity. Every method reads the replica.
type Analytics interface {
	BookingsOn(ctx context.Context, date string) (int, error)
	ActiveAt(ctx context.Context, date string, minute int) (int, error)
	RoomCount(ctx context.Context) (int, error)
	BookingsPerRoom(ctx context.Context, limit uint64) ([]model.RoomTotal, error)
	HoursPerRoom(ctx context.Context) ([]model.RoomHours, error)
	StartTimes(ctx context.Context) ([]model.StartTotal, error)
	BookingsPerDay(ctx context.Context) ([]model.DayTotal, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomTotal]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Analytics {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomTotal](model.EntityName, model.BookingTable, colBookingID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) count(ctx context.Context, name string, query squirrel.SelectBuilder) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics."+name)
	defer scope.End()

	var total int
	if err := r.Scalar(ctx, &total, query); err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count %s: %w", name, err)
	}

	return total, nil
}

func (r *repositoryImpl) BookingsOn(ctx context.Context, date string) (int, error) {
	return r.count(ctx, "BookingsOn", bookingsOnQuery(date))
}

func (r *repositoryImpl) ActiveAt(ctx context.Context, date string, minute int) (int, error) {
	return r.count(ctx, "ActiveAt", activeAtQuery(date, minute))
}

func (r *repositoryImpl) RoomCount(ctx context.Context) (int, error) {
	return r.count(ctx, "RoomCount", gRepo.Builder.Select(countAll).From(model.RoomTable))
}

// BookingsPerRoom ranks rooms by booking count, rooms never booked included. Zero limit means all.
func (r *repositoryImpl) BookingsPerRoom(ctx context.Context, limit uint64) ([]model.RoomTotal, error) {
	var rows []model.RoomTotal

	return rows, r.selectInto(ctx, "BookingsPerRoom", &rows, bookingsPerRoomQuery(limit))
}

// HoursPerRoom ranks rooms by total booked hours.
func (r *repositoryImpl) HoursPerRoom(ctx context.Context) ([]model.RoomHours, error) {
	var rows []model.RoomHours

	return rows, r.selectInto(ctx, "HoursPerRoom", &rows, hoursPerRoomQuery())
}

// StartTimes ranks start times by how often bookings begin at them.
func (r *repositoryImpl) StartTimes(ctx context.Context) ([]model.StartTotal, error) {
	var rows []model.StartTotal

	return rows, r.selectInto(ctx, "StartTimes", &rows, startTimesQuery())
}

// BookingsPerDay counts bookings per date, newest first.
func (r *repositoryImpl) BookingsPerDay(ctx context.Context) ([]model.DayTotal, error) {
	var rows []model.DayTotal

	return rows, r.selectInto(ctx, "BookingsPerDay", &rows, bookingsPerDayQuery())
}

func (r *repositoryImpl) selectInto(ctx context.Context, name string, dest any, query squirrel.SelectBuilder) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics."+name)
	defer scope.End()

	if err := r.Select(ctx, dest, query); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to aggregate %s: %w", name, err)
	}

	return nil
}

func bookingsOnQuery(date string) squirrel.SelectBuilder {
	return gRepo.Builder.Select(countAll).From(model.BookingTable).Where(squirrel.Eq{colDate: date})
}

func activeAtQuery(date string, minute int) squirrel.SelectBuilder {
	return bookingsOnQuery(date).
		Where(squirrel.LtOrEq{colStart: minute}).
		Where(squirrel.Gt{colEnd: minute})
}

func perRoom() squirrel.SelectBuilder {
	return gRepo.Builder.Select(colRoomNumber).
		From(model.RoomTable).
		LeftJoin(model.BookingTable + " ON " + colRoomID + " = " + colBookingRoom).
		GroupBy(colRoomNumber)
}

func bookingsPerRoomQuery(limit uint64) squirrel.SelectBuilder {
	query := perRoom().
		Column("COUNT(" + colBookingID + ") AS " + model.FieldTotal).
		OrderBy(model.FieldTotal+" DESC", colRoomNumber)

	if limit > 0 {
		query = query.Limit(limit)
	}

	return query
}

func hoursPerRoomQuery() squirrel.SelectBuilder {
	return perRoom().
		Column("COALESCE(SUM(" + colEnd + " - " + colStart + "), 0) / 60.0 AS " + model.FieldTotalHours).
		OrderBy(model.FieldTotalHours+" DESC", colRoomNumber)
}

func startTimesQuery() squirrel.SelectBuilder {
	return gRepo.Builder.Select(colStart, countAll+" AS "+model.FieldTotal).
		From(model.BookingTable).
		GroupBy(colStart).
		OrderBy(model.FieldTotal+" DESC", colStart)
}

func bookingsPerDayQuery() squirrel.SelectBuilder {
	return gRepo.Builder.Select(colDate, countAll+" AS "+model.FieldTotal).
		From(model.BookingTable).
		GroupBy(colDate).
		OrderBy(colDate + " DESC")
}
