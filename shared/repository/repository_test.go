package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"studyroom/infras/otel/mocks"
	"studyroom/shared/constant"
	"studyroom/shared/dto"
	"studyroom/shared/model"
	"studyroom/shared/repository"
)

type slot struct {
	ID         string    `db:"id"`
	RoomID     string    `db:"room_id"`
	RoomNumber string    `db:"room_number" table:"rooms"`
	Day        time.Time `db:"day_alias"   table:"bookings_archive" column:"booking_date"`
	model.Metadata
}

func (slot) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = slots.room_id"
}

func TestNewRepositoryColumns(t *testing.T) {
	repo := repository.NewRepository[slot]("slot", "slots", "id", nil, mocks.NewOtel())

	assert.Equal(t, []string{"id", "room_id", "created_at", "modified_at", "created_by", "modified_by"}, repo.InsertColumns)
	assert.Equal(t, "JOIN rooms ON rooms.id = slots.room_id", repo.Join())
	assert.Equal(t,
		"slots.id, slots.room_id, rooms.room_number, bookings_archive.booking_date AS day_alias, slots.created_at, slots.modified_at, slots.created_by, slots.modified_by",
		repo.SelectQuery(context.Background()),
	)
	assert.Equal(t, "slots.id, rooms.room_number", repo.SelectQuery(context.Background(), "id", "room_number"))
}

func TestBuildWhereClause(t *testing.T) {
	repo := repository.NewRepository[slot]("slot", "slots", "id", nil, mocks.NewOtel())

	where, args := repo.BuildWhereClause(context.Background(), dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(context.Background(), dto.And(
		dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq, Table: "slots"},
	))
	assert.Equal(t, " WHERE (slots.room_id = :room_id) ", where)
	assert.Equal(t, map[string]any{"room_id": "r1"}, args)
}

func TestIsViolation(t *testing.T) {
	err := fmt.Errorf("failed to insert data (booking): %w", &pq.Error{Code: "23P01"})

	assert.True(t, repository.IsViolation(err, constant.PqErrorCodeExclusionViolation))
	assert.False(t, repository.IsViolation(err, constant.PqErrorCodeUniqueViolation))
	assert.False(t, repository.IsViolation(errors.New("plain"), constant.PqErrorCodeExclusionViolation))
}
