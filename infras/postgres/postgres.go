package postgres

//nolint:revive
import (
	"rentdesk/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
	maxConnLifetime    = 30 * time.Minute
)

// Connection splits reads (detail view, lists) from writes so the read side
// can point at a replica.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  Connect("read", pg.Read, pg.Prefix, pg.MaxRetry, pg.RetryWaitTime),
		Write: Connect("write", pg.Write, pg.Prefix, pg.MaxRetry, pg.RetryWaitTime),
	}
}

// Connect retries until the database answers and stops the process when it
// never does; every request needs the database.
func Connect(name string, endpoint config.PostgresEndpoint, prefix string, maxRetry, waitSeconds int) *sqlx.DB {
	dsn := endpoint.DSN(prefix, nil)
	logger := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", prefix+endpoint.Name).
		Logger()

	var lastErr error

	for attempt := 1; attempt <= max(1, maxRetry); attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(maxConnLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		lastErr = err

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	logger.Fatal().Err(lastErr).Msg("Giving up connecting to database")

	return nil
}
