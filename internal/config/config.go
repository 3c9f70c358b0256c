package config

import (
	"github.com/hooplytics/playtype-stats-service/internal/logger"
)

// PostgresConfig carries connection and pool tuning parameters.
// Durations are whole seconds to keep the YAML flat.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"db"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
}

// ServerConfig covers the HTTP listener and the CORS allowlist consumed by
// the frontend dev host.
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DataConfig points at the three source collections loaded at startup.
// Paths are deployment concerns; the loader itself only sees byte streams.
type DataConfig struct {
	Teams   string `mapstructure:"teams"`
	Players string `mapstructure:"players"`
	Games   string `mapstructure:"games"`
}

type Config struct {
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Server   ServerConfig        `mapstructure:"server"`
	Data     DataConfig          `mapstructure:"data"`
}
