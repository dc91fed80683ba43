package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"studyroom/infras/otel"
	"studyroom/infras/postgres"
	"studyroom/internal/domains/booking/model"
	"studyroom/shared/constant"
	gDto "studyroom/shared/dto"
	gRepo "studyroom/shared/repository"

	"github.com/Masterminds/squirrel"
)

const (
	argOverlapStart = "overlap_start"
	argOverlapEnd   = "overlap_end"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Overlaps(ctx context.Context, roomID, date string, start, end int) (bool, error)
	BookingsFor(ctx context.Context, roomID, date string) ([]model.Booking, error)
	ActiveAt(ctx context.Context, date string, minute int) ([]model.Booking, error)
	History(ctx context.Context, email string) ([]model.RoomBooking, error)
	Recent(ctx context.Context, limit uint64) ([]model.RoomBooking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	joined gRepo.Repository[model.RoomBooking]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		joined:     gRepo.NewRepository[model.RoomBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func byRoomAndDate(roomID, date string) []any {
	return []any{
		gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldBookingDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}
}

// overlapFilter matches bookings of the room on date that intersect [start, end).
// Bookings that merely touch the interval do not match.
func overlapFilter(roomID, date string, start, end int) gDto.FilterGroup {
	return gDto.And(append(byRoomAndDate(roomID, date),
		gDto.Filter{ArgName: argOverlapEnd, Field: model.FieldStartMinute, Value: end, Operator: gDto.FilterOperatorLess, Table: model.TableName},
		gDto.Filter{ArgName: argOverlapStart, Field: model.FieldEndMinute, Value: start, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
	)...)
}

// activeFilter matches bookings on date with start <= minute < end.
func activeFilter(date string, minute int) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldBookingDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStartMinute, Value: minute, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldEndMinute, Value: minute, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
	)
}

// Overlaps reports whether any booking of the room on date intersects [start, end).
func (r *repositoryImpl) Overlaps(ctx context.Context, roomID, date string, start, end int) (bool, error) {
	return r.Exist(ctx, overlapFilter(roomID, date, start, end)) //nolint:wrapcheck
}

// BookingsFor lists the room's bookings on date by start time.
func (r *repositoryImpl) BookingsFor(ctx context.Context, roomID, date string) ([]model.Booking, error) {
	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldStartMinute, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, gDto.And(byRoomAndDate(roomID, date)...)) //nolint:wrapcheck
}

// ActiveAt lists bookings in progress at minute of date, one per occupied room.
func (r *repositoryImpl) ActiveAt(ctx context.Context, date string, minute int) ([]model.Booking, error) {
	return r.GetAll(ctx, gDto.QueryParams{}, activeFilter(date, minute)) //nolint:wrapcheck
}

// History lists the bookings made with email, newest date first.
func (r *repositoryImpl) History(ctx context.Context, email string) ([]model.RoomBooking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.History")
	defer scope.End()

	query := r.joinedQuery(ctx).
		Where(squirrel.Expr("LOWER("+model.TableName+"."+model.FieldEmail+") = ?", strings.ToLower(email))).
		OrderBy(model.TableName+"."+model.FieldBookingDate+" DESC", model.TableName+"."+model.FieldStartMinute+" ASC")

	var bookings []model.RoomBooking
	if err := r.joined.Select(ctx, &bookings, query); err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get booking history: %w", err)
	}

	return bookings, nil
}

// Recent lists the latest bookings across all rooms for the staff dashboard.
func (r *repositoryImpl) Recent(ctx context.Context, limit uint64) ([]model.RoomBooking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Recent")
	defer scope.End()

	query := r.joinedQuery(ctx).
		OrderBy(model.TableName+"."+model.FieldBookingDate+" DESC", model.TableName+"."+model.FieldStartMinute+" DESC").
		Limit(limit)

	var bookings []model.RoomBooking
	if err := r.joined.Select(ctx, &bookings, query); err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	return bookings, nil
}

func (r *repositoryImpl) joinedQuery(ctx context.Context) squirrel.SelectBuilder {
	return gRepo.Builder.
		Select(r.joined.SelectQuery(ctx)).
		From(model.TableName).
		JoinClause(r.joined.Join())
}
