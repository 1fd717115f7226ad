package helper

//nolint:revive
import (
	"bookit/config"
	"bookit/infras/postgres"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	DefaultSource = "file://migrations/postgres"

	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// DatabaseURL is the write database DSN with the migrations table selected.
func DatabaseURL(config *config.Config) string {
	write := config.DB.Postgres.Write
	dsn := postgres.DSN(write.Username, write.Password, write.Host, write.Port, getDBName(config, write.Name), write.SSLMode)

	table := config.DB.Postgres.MigrationTable
	if table == "" {
		return dsn
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return dsn
	}

	query := u.Query()
	query.Set("x-migrations-table", table)
	u.RawQuery = query.Encode()

	return u.String()
}

// Run applies action to the database at databaseURL using the migrations in source.
func Run(source, databaseURL, action string) error {
	mig, err := migrate.New(source, databaseURL)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations (%s): %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migrations completed successfully")

	return nil
}

func Runner(config *config.Config, action string) error {
	return Run(DefaultSource, DatabaseURL(config), action)
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
