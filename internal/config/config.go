package config

import "strconv"

type Config struct {
	Port      int            `koanf:"port"`
	LogLevel  string         `koanf:"log_level"`
	StaticDir string         `koanf:"static_dir"`
	Database  DatabaseConfig `koanf:"database"`
	CORS      CORSConfig     `koanf:"cors"`
}

type DatabaseConfig struct {
	// Driver is "sqlite" (embedded file) or "pgx" (PostgreSQL).
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

func New() *Config {
	return &Config{
		Port:      3000,
		LogLevel:  "info",
		StaticDir: "public",
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "./results.db",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
