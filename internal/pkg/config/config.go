package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (grid shape, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	TeeSheet  TeeSheetConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// TeeSheetConfig shapes the daily slot grid. FirstTee/LastTee use the 24h
// "15:04" form; the default 07:00-19:00 window at 15 minutes yields 48 slots.
type TeeSheetConfig struct {
	FirstTee   string        `envconfig:"TEESHEET_FIRST_TEE" default:"07:00"`
	LastTee    string        `envconfig:"TEESHEET_LAST_TEE" default:"19:00"`
	Interval   time.Duration `envconfig:"TEESHEET_INTERVAL" default:"15m"`
	MaxPlayers int           `envconfig:"TEESHEET_MAX_PLAYERS" default:"4"`
	PriceCents int           `envconfig:"TEESHEET_PRICE_CENTS" default:"6500"`
}

type SchedulerConfig struct {
	Enabled bool `envconfig:"SCHEDULER_ENABLED" default:"true"`
	// Minutes past midnight for the daily bookings sweep.
	ResetOffsetMin int `envconfig:"SCHEDULER_RESET_OFFSET_MIN" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		TeeSheet: TeeSheetConfig{
			FirstTee:   "07:00",
			LastTee:    "19:00",
			Interval:   15 * time.Minute,
			MaxPlayers: 4,
			PriceCents: 6500,
		},
		Scheduler: SchedulerConfig{
			Enabled:        false,
			ResetOffsetMin: 5,
		},
	}
}
