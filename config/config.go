package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      App
}

type App struct {
	Host string
	Port int
	// MediaDir holds uploaded post images, served under /media.
	MediaDir   string
	SessionTTL time.Duration
	CookieName string
	// Secure marks the session cookie HTTPS only.
	Secure bool
	// Migrate applies pending migrations on start.
	Migrate bool
	// LogQueries logs every SQL query at debug level.
	LogQueries bool
}

func Default() Config {
	return Config{
		Database: pg.Options{
			Addr:     "localhost:5432",
			User:     "postgres",
			Database: "blogicum",
			PoolSize: 10,
		},
		App: App{
			Host:       "0.0.0.0",
			Port:       8000,
			MediaDir:   "media",
			SessionTTL: 14 * 24 * time.Hour,
			CookieName: "session_id",
			Migrate:    true,
		},
	}
}

// Load reads a TOML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

func (a App) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}
