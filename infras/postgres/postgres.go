package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"time"

	"adscape/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits traffic between a read replica and the primary. Both point at the same pool
// when the replica is not configured.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write, err := connect("write", pg.Write, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the primary database")
	}

	if pg.Read.Name == "" || pg.Read == pg.Write {
		log.Info().Msg("No read replica configured, reads go to the primary")

		return &Connection{Read: write, Write: write}
	}

	read, err := connect("read", pg.Read, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the read replica")
	}

	return &Connection{Read: read, Write: write}
}

func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing write connection: %w", err))
		}
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing read connection: %w", err))
		}
	}

	return errors.Join(errs...)
}

// connect retries MaxRetry times, waiting RetryWaitTime seconds between attempts.
func connect(role string, endpoint config.PostgresEndpoint, cfg *config.Config) (*sqlx.DB, error) {
	pg := cfg.DB.Postgres
	dsn := endpoint.URL(pg.Prefix, nil)
	wait := time.Duration(pg.RetryWaitTime) * time.Second

	logger := log.With().
		Str("role", role).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", pg.Prefix+endpoint.Name).
		Logger()

	var lastErr error

	for attempt := 1; attempt <= max(pg.MaxRetry, 1); attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)

			logger.Info().Msg("Connected to database")

			return db, nil
		}

		lastErr = err

		logger.Warn().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(wait)
	}

	return nil, fmt.Errorf("connecting to %s database: %w", role, lastErr)
}
