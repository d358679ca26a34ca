package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address          string        `env:"RUN_ADDRESS"        envDefault:"localhost:8080"`
	Database         string        `env:"DATABASE_URI"`
	RedisURL         string        `env:"REDIS_URL"`
	RedisPassword    string        `env:"REDIS_PASSWORD"`
	LogLvl           string        `env:"LOG_LVL"            envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT"         envDefault:"console"`
	AuthPassword     string        `env:"AUTH_PASSWORD"`
	AuthPasswordHash string        `env:"AUTH_PASSWORD_HASH"`
	AuthSecret       string        `env:"AUTH_SECRET"        envDefault:"ordertracker-secret"`
	SessionTTL       time.Duration `env:"SESSION_TTL"        envDefault:"168h"`
	CookieSecure     bool          `env:"COOKIE_SECURE"      envDefault:"false"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN")
	flag.StringVar(&cfg.RedisURL, "k", cfg.RedisURL, "redis (KV store) URL")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	return cfg
}

// HasExternalStore reports whether any external backend is configured.
func (c *Config) HasExternalStore() bool {
	return c.RedisURL != "" || c.Database != ""
}
