package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	Database pg.Options
	// LogQueries logs every SQL statement at debug level.
	LogQueries bool
	App        struct {
		Host           string
		Port           int
		Storage        string
		RequestTimeout Duration
		MaxSessions    int
		MigrationsDir  string
	}
	Cache struct {
		Driver   string
		Addr     string
		Password string
		DB       int
		Prefix   string
		TTL      Duration
	}
	Auth struct {
		// Secret enables HS256 bearer tokens for admin requests.
		Secret string
	}
}

// Duration decodes TOML strings such as "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Load decodes the TOML file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func Default() Config {
	var cfg Config
	cfg.App.Port = 3000
	cfg.App.Storage = StoragePostgres
	cfg.App.RequestTimeout = Duration{5 * time.Second}
	cfg.App.MaxSessions = 1024
	cfg.App.MigrationsDir = "docs/patches"
	cfg.Cache.Driver = CacheMemory
	cfg.Cache.TTL = Duration{time.Minute}
	cfg.Cache.Prefix = "content"
	return cfg
}

func (c Config) Validate() error {
	var errs []error

	switch c.App.Storage {
	case StorageMemory, StoragePostgres:
	default:
		errs = append(errs, fmt.Errorf("app.storage: unknown storage %q", c.App.Storage))
	}

	switch c.Cache.Driver {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Cache.Addr == "" {
			errs = append(errs, errors.New("cache.addr: required for redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.driver: unknown driver %q", c.Cache.Driver))
	}

	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("app.port: %d is out of range", c.App.Port))
	}
	if c.App.RequestTimeout.Duration < 0 {
		errs = append(errs, errors.New("app.requestTimeout: must not be negative"))
	}

	return errors.Join(errs...)
}

// SetDatabaseURL replaces the database options with the ones of a
// postgres:// URL.
func (c *Config) SetDatabaseURL(databaseURL string) error {
	opt, err := pg.ParseURL(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.MaxRetries = 3
	opt.PoolSize = c.Database.PoolSize
	c.Database = *opt
	return nil
}

// DatabaseURL renders the database options as a postgres:// URL for goose.
func (c Config) DatabaseURL() string {
	host, port, err := net.SplitHostPort(c.Database.Addr)
	if err != nil {
		host, port = c.Database.Addr, "5432"
	}
	if host == "" {
		host = "localhost"
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Database.User, c.Database.Password),
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + c.Database.Database,
	}
	q := url.Values{}
	if c.Database.TLSConfig == nil {
		q.Set("sslmode", "disable")
	}
	if c.Database.ApplicationName != "" {
		q.Set("application_name", c.Database.ApplicationName)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.App.Host, strconv.Itoa(c.App.Port))
}
