package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableQuery(t *testing.T) {
	query, args, err := availableQuery("rooms.id, rooms.room_number", "2025-03-14", 600, 660, 4).ToSql()

	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT rooms.id, rooms.room_number FROM rooms WHERE rooms.capacity >= $1 AND NOT EXISTS "+
			"(SELECT 1 FROM bookings WHERE bookings.room_id = rooms.id AND bookings.booking_date = $2 "+
			"AND bookings.start_minute < $3 AND bookings.end_minute > $4) ORDER BY rooms.room_number",
		query)
	assert.Equal(t, []any{4, "2025-03-14", 660, 600}, args)
}
