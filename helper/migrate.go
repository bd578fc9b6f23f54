package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"lodge/config"
	"lodge/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"

	defaultMigrationsSource = "file://migrations/postgres"
)

var actions = map[string]func(mig *migrate.Migrate) error{
	ActionUp:     func(mig *migrate.Migrate) error { return mig.Up() },
	ActionDown:   func(mig *migrate.Migrate) error { return mig.Steps(-1) },
	ActionStepUp: func(mig *migrate.Migrate) error { return mig.Steps(1) },
	ActionDrop:   func(mig *migrate.Migrate) error { return mig.Down() },
}

// Actions lists what Runner accepts, in the order the migrate command documents them.
func Actions() []string {
	return []string{ActionUp, ActionDown, ActionStepUp, ActionDrop, ActionVersion}
}

// DatabaseURL builds the write-side connection URL golang-migrate expects.
func DatabaseURL(config *config.Config) string {
	extra := url.Values{}
	if config.DB.Postgres.MigrationTable != "" {
		extra.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	write := config.DB.Postgres.Write

	return postgres.DSN(write, postgres.DatabaseName(config, write.Name), extra)
}

func source(config *config.Config) string {
	if config.DB.Postgres.MigrationsSource != "" {
		return config.DB.Postgres.MigrationsSource
	}

	return defaultMigrationsSource
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(source(config), DatabaseURL(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	run, known := actions[action]
	if !known && action != ActionVersion {
		return fmt.Errorf("unknown migration action %q", action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if known {
		if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running %s migration: %w", action, err)
		}
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations finished")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

// AutoMigrate applies pending migrations when DB_POSTGRES_AUTO_MIGRATE is set.
func AutoMigrate(config *config.Config) error {
	if !config.DB.Postgres.AutoMigrate {
		return nil
	}

	return Up(config)
}
