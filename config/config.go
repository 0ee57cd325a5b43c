package config

import (
	"fmt"
	"net"
	"net/url"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// PostgresEndpoint is one side of the read/write split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"     default:"localhost"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// URL renders a postgres:// connection string. prefix is prepended to the database name.
func (e PostgresEndpoint) URL(prefix string, extra url.Values) string {
	query := url.Values{"sslmode": {e.SSLMode}}
	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + prefix + e.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"10"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"adscape"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			Enable           bool     `envconfig:"ENABLE"`
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		// APIKey guards the approval route. Blank disables HTTP approvals.
		APIKey string `envconfig:"API_KEY"`
		// AssetBaseURL resolves creative references stored as server-relative paths ("/uploads/1.png").
		AssetBaseURL string `envconfig:"ASSET_BASE_URL"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL     int `envconfig:"TTL"      default:"60"`
		LiveTTL int `envconfig:"LIVE_TTL" default:"5"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int              `envconfig:"MAX_RETRY"       default:"5"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MaxOpenConns   int              `envconfig:"MAX_OPEN_CONNS"  default:"10"`
			MaxIdleConns   int              `envconfig:"MAX_IDLE_CONNS"  default:"10"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			Prefix         string           `envconfig:"PREFIX"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Booking struct {
		// AutoSchedule inserts new bookings as Scheduled instead of waiting for an approval.
		AutoSchedule              bool `envconfig:"AUTO_SCHEDULE"`
		TransactionTimeoutSeconds int  `envconfig:"TRANSACTION_TIMEOUT_SECONDS" default:"10"`
	} `envconfig:"BOOKING"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"adscape"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			BookingEvents    string `envconfig:"BOOKING_EVENTS"    default:"booking-events"`
			BookingApprovals string `envconfig:"BOOKING_APPROVALS" default:"booking-approvals"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			Region          string `envconfig:"REGION" default:"auto"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf    Config
	loadErr error
	once    sync.Once
)

// Load reads .env when present, then the process environment. It runs once per process.
func Load() (*Config, error) {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Debug().Err(err).Msg("no .env file, reading the process environment only")
		}

		if err := envconfig.Process("", &conf); err != nil {
			loadErr = fmt.Errorf("processing environment: %w", err)
		}
	})

	return &conf, loadErr
}

// Get is Load for callers that cannot run without configuration.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	return cfg
}
