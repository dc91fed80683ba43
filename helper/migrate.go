package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"strings"

	"studyroom/config"
	"studyroom/infras/postgres"
	"studyroom/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action, use up, down, step-up or drop")

func connectionString(config *config.Config) string {
	write := config.DB.Postgres.Write
	descriptor := postgres.Descriptor(write.Username, write.Password, write.Host, write.Port,
		config.DB.Postgres.Prefix+write.Name, write.SSLMode, "")

	if table := config.DB.Postgres.MigrationTable; table != "" {
		separator := "?"
		if strings.Contains(descriptor, "?") {
			separator = "&"
		}

		descriptor += separator + "x-migrations-table=" + table
	}

	return descriptor
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.Postgres, "postgres")
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies one migration action against the write database.
func Runner(config *config.Config, action string) error {
	steps := map[string]func(*migrate.Migrate) error{
		ActionUp:     (*migrate.Migrate).Up,
		ActionDown:   func(m *migrate.Migrate) error { return m.Steps(-1) },
		ActionStepUp: func(m *migrate.Migrate) error { return m.Steps(1) },
		ActionDrop:   (*migrate.Migrate).Down,
	}

	step, ok := steps[action]
	if !ok {
		return ErrUnknownAction
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration finished")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}
