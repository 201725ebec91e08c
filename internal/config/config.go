package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// durationSeconds parses env as time.Duration: "10s", "5m" or bare number = seconds (e.g. "10" -> 10s).
type durationSeconds time.Duration

// SetValue implements cleanenv.Setter.
func (d *durationSeconds) SetValue(data string) error {
	v, err := parseDuration(data)
	if err != nil {
		return err
	}
	*d = durationSeconds(v)
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	// Strip optional surrounding quotes: "10s" or '10s'
	if len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')) {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	// Bare number first (e.g. HTTP_READ_TIMEOUT=10) — so "10s" never goes to ParseInt
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duration must be like 10s, 5m or a number of seconds: %w", err)
	}
	return d, nil
}

func (d durationSeconds) Duration() time.Duration { return time.Duration(d) }

type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	PG   PGConfig
}

type AppConfig struct {
	Env     string `env:"APP_ENV" env-default:"development"`
	Version string `env:"VERSION" env-default:"dev"`
}

type HTTPConfig struct {
	Port string `env:"HTTP_PORT" env-default:"8080"`

	// Value: "10s", "5m" or a bare number of seconds (e.g. 10).
	ReadTimeout  durationSeconds `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout durationSeconds `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  durationSeconds `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type PGConfig struct {
	// DSN wins when set. Otherwise it is assembled from the discrete fields.
	DSN      string `env:"PG_DSN" env-default:""`
	Host     string `env:"PG_HOST" env-default:""`
	Port     int    `env:"PG_PORT" env-default:"5432"`
	Database string `env:"PG_DB" env-default:""`
	User     string `env:"PG_USER" env-default:""`
	Password string `env:"PG_PASSWORD" env-default:""`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.PG.DSN == "" {
		dsn, err := buildDSN(cfg.PG)
		if err != nil {
			return Config{}, err
		}
		cfg.PG.DSN = dsn
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with production hardening
// (no swagger docs exposed).
func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

func buildDSN(pg PGConfig) (string, error) {
	if pg.Host == "" || pg.Database == "" || pg.User == "" {
		return "", fmt.Errorf("PG_DSN or PG_HOST/PG_DB/PG_USER is required")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(pg.User, pg.Password),
		Host:   fmt.Sprintf("%s:%d", pg.Host, pg.Port),
		Path:   "/" + pg.Database,
	}
	q := url.Values{}
	q.Set("sslmode", "require")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
