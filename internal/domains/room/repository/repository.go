package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"studyroom/infras/otel"
	"studyroom/infras/postgres"
	"studyroom/internal/domains/room/model"
	"studyroom/shared/constant"
	gDto "studyroom/shared/dto"
	gRepo "studyroom/shared/repository"

	"github.com/Masterminds/squirrel"
)

const bookingTable = "bookings"

type Room interface {
	Upsert(ctx context.Context, room model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Available(ctx context.Context, date string, start, end, minCapacity int) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert inserts the room or overwrites the row with the same id.
func (r *repositoryImpl) Upsert(ctx context.Context, room model.Room) error {
	return r.Repository.Upsert(ctx, room, model.FieldID) //nolint:wrapcheck
}

// Available lists rooms holding at least minCapacity seats with no booking on date
// overlapping [start, end). Rooms are ordered by room number.
func (r *repositoryImpl) Available(ctx context.Context, date string, start, end, minCapacity int) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Available")
	defer scope.End()

	query := availableQuery(r.SelectQuery(ctx), date, start, end, minCapacity)

	var rooms []model.Room
	if err := r.Select(ctx, &rooms, query); err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return rooms, nil
}

func availableQuery(columns, date string, start, end, minCapacity int) squirrel.SelectBuilder {
	// Placeholders stay in "?" form here; the outer builder renumbers them.
	overlapping := squirrel.Select("1").
		From(bookingTable).
		Where(fmt.Sprintf("%s.room_id = %s.%s", bookingTable, model.TableName, model.FieldID)).
		Where(squirrel.Eq{bookingTable + ".booking_date": date}).
		Where(squirrel.Lt{bookingTable + ".start_minute": end}).
		Where(squirrel.Gt{bookingTable + ".end_minute": start})

	return gRepo.Builder.
		Select(columns).
		From(model.TableName).
		Where(squirrel.GtOrEq{model.TableName + "." + model.FieldCapacity: minCapacity}).
		Where(squirrel.Expr("NOT EXISTS (?)", overlapping)).
		OrderBy(model.TableName + "." + model.FieldRoomNumber)
}
