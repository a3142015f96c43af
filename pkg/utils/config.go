package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full server configuration. Values come from a TOML file
// (BABYLON_CONFIG, default babylon.toml if present) with environment
// overrides on top. The archive root is always passed down explicitly;
// nothing below main reads the environment.
type Config struct {
	ArchiveRoot  string             `toml:"archive_root"`
	Bind         string             `toml:"bind"`
	DBPath       string             `toml:"db_path"`
	Auth         AuthConfig         `toml:"auth"`
	Completeness CompletenessConfig `toml:"completeness"`
}

type AuthConfig struct {
	JWTSecret   string `toml:"jwt_secret"`
	JWTIssuer   string `toml:"jwt_issuer"`
	JWTTTLHours int    `toml:"jwt_ttl_hours"`
}

// CompletenessConfig holds the expected corpus sizes used for the
// completeness ratio. Targets maps creator id to its expected total;
// creators without an entry fall back to DefaultTarget.
type CompletenessConfig struct {
	DefaultTarget int            `toml:"default_target"`
	Targets       map[string]int `toml:"targets"`
}

func (c CompletenessConfig) TargetFor(creatorID string) int {
	if t, ok := c.Targets[creatorID]; ok && t > 0 {
		return t
	}
	return c.DefaultTarget
}

func (a AuthConfig) TokenTTL() time.Duration {
	if a.JWTTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(a.JWTTTLHours) * time.Hour
}

func DefaultConfig() Config {
	return Config{
		ArchiveRoot: "archive",
		Bind:        ":8080",
		Auth: AuthConfig{
			// dev default (change for demo / production)
			JWTSecret:   "dev-secret-change-me",
			JWTIssuer:   "babylon",
			JWTTTLHours: 24,
		},
		Completeness: CompletenessConfig{DefaultTarget: 150},
	}
}

// LoadConfig reads the TOML config file, if any, then applies environment
// overrides. A missing default file is fine; a malformed one is an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path := os.Getenv("BABYLON_CONFIG")
	explicit := path != ""
	if path == "" {
		path = "babylon.toml"
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// optional default file, keep built-in defaults
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv("BABYLON_ARCHIVE_ROOT"); v != "" {
		cfg.ArchiveRoot = v
	}
	if v := os.Getenv("BABYLON_BIND"); v != "" {
		cfg.Bind = v
	}
	if v := os.Getenv("BABYLON_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("BABYLON_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	return cfg, nil
}
