package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"adscape/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

type step func(m *migrate.Migrate) error

var steps = map[string]step{
	"up":      func(m *migrate.Migrate) error { return m.Up() },
	"down":    func(m *migrate.Migrate) error { return m.Steps(-1) },
	"step-up": func(m *migrate.Migrate) error { return m.Steps(1) },
	"drop":    func(m *migrate.Migrate) error { return m.Down() },
	"version": logVersion,
}

// Actions lists what Migrate accepts, sorted.
func Actions() []string {
	actions := make([]string, 0, len(steps))
	for action := range steps {
		actions = append(actions, action)
	}

	slices.Sort(actions)

	return actions
}

// Migrate applies action against the primary database. An already current schema is not an error.
func Migrate(cfg *config.Config, action string) error {
	run, ok := steps[action]
	if !ok {
		return fmt.Errorf("unknown migration action %q, use one of: %s", action, strings.Join(Actions(), ", "))
	}

	pg := cfg.DB.Postgres

	mig, err := migrate.New(migrationSource, pg.Write.URL(pg.Prefix, url.Values{"x-migrations-table": {pg.MigrationTable}}))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return Migrate(cfg, "up")
}

func logVersion(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("No migration applied yet")

		return nil
	}

	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current schema version")

	return nil
}
