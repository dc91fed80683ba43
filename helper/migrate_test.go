package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studyroom/config"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Write.Username = "booker"
	cfg.DB.Postgres.Write.Password = "secret"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "studyroom"
	cfg.DB.Postgres.Write.SSLMode = "disable"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"

	assert.Equal(t, "postgres://booker:secret@db:5432/studyroom?sslmode=disable&x-migrations-table=schema_migrations", connectionString(cfg))
}

func TestRunnerRejectsUnknownAction(t *testing.T) {
	assert.ErrorIs(t, Runner(&config.Config{}, "sideways"), ErrUnknownAction)
}

func TestConnectionStringWithoutSSLMode(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Write.Username = "u"
	cfg.DB.Postgres.Write.Password = "p"
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "rooms"
	cfg.DB.Postgres.MigrationTable = "migrations"

	assert.Equal(t, "postgres://u:p@localhost:5432/rooms?x-migrations-table=migrations", connectionString(cfg))
}
