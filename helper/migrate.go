package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"rentdesk/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

// Direction names accepted by Runner and the migrate command.
const (
	DirectionUp     = "up"
	DirectionDown   = "down"
	DirectionStepUp = "step-up"
	DirectionDrop   = "drop"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

func open(cfg *config.Config) (*migrate.Migrate, error) {
	pg := cfg.DB.Postgres

	dsn := pg.Write.DSN(pg.Prefix, url.Values{"x-migrations-table": {pg.MigrationTable}})

	mig, err := migrate.New(migrationsSource, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies the schema in one direction. "down" undoes the last
// migration, "drop" undoes all of them.
func Runner(cfg *config.Config, direction string) error {
	var apply func(*migrate.Migrate) error

	switch direction {
	case DirectionUp:
		apply = (*migrate.Migrate).Up
	case DirectionDown:
		apply = func(m *migrate.Migrate) error { return m.Steps(-1) }
	case DirectionStepUp:
		apply = func(m *migrate.Migrate) error { return m.Steps(1) }
	case DirectionDrop:
		apply = (*migrate.Migrate).Down
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	mig, err := open(cfg)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := apply(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error applying %s migration: %w", direction, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("direction", direction).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations applied")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, DirectionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, DirectionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, DirectionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, DirectionDrop)
}
