package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database Database
	App      struct {
		Host string
		Port int
	}
	Admin Admin
	Study struct {
		HeroFlipInterval Duration
	}
}

// Database describes the remote store. An empty URL means no store is configured.
type Database struct {
	URL             string
	MaxConns        int
	MaxConnLifetime Duration
	LogQueries      bool
}

type Admin struct {
	SessionName      string
	SessionSecret    string
	WorkspaceTTL     Duration
	SuccessIndicator Duration
}

// Duration decodes TOML strings such as "300s" or "4s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func Default() Config {
	var cfg Config
	cfg.App.Host = "0.0.0.0"
	cfg.App.Port = 3000
	cfg.Database.MaxConns = 5
	cfg.Database.MaxConnLifetime = Duration{300 * time.Second}
	cfg.Admin.SessionName = "interview_deck_admin"
	cfg.Admin.WorkspaceTTL = Duration{30 * time.Minute}
	cfg.Admin.SuccessIndicator = Duration{2 * time.Second}
	cfg.Study.HeroFlipInterval = Duration{4 * time.Second}
	return cfg
}

// Load decodes path over the defaults. A missing file is not an error:
// the service then runs against the built-in dataset.
func Load(path string) (Config, bool, error) {
	cfg := Default()
	if path == "" {
		return cfg, false, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, false, nil
		}
		return cfg, false, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, true, nil
}

func (d Database) Configured() bool {
	return d.URL != ""
}

// Options converts the database section into go-pg options.
func (d Database) Options() (*pg.Options, error) {
	opt, err := pg.ParseURL(d.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.MaxRetries = 3
	if d.MaxConns > 0 {
		opt.PoolSize = d.MaxConns
	}
	if d.MaxConnLifetime.Duration > 0 {
		opt.MaxConnAge = d.MaxConnLifetime.Duration
	}

	return opt, nil
}
