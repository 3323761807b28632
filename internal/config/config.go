// Package config loads the service configuration from defaults, an optional
// YAML file and INVENTORY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "INVENTORY"

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type Config struct {
	Store StoreConfig `mapstructure:"store"`
	Redis RedisConfig `mapstructure:"redis"`
	HTTP  HTTPConfig  `mapstructure:"http"`
	Log   LogConfig   `mapstructure:"log"`
}

type StoreConfig struct {
	Driver  string        `mapstructure:"driver"`
	Path    string        `mapstructure:"path"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.path", "data/inventory.db")
	v.SetDefault("store.url", "")
	v.SetDefault("store.timeout", 3*time.Second)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "inventory")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", time.Minute)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.rate_limit", 5.0)
	v.SetDefault("http.rate_burst", 10)

	v.SetDefault("log.level", "info")
}

// Load reads the configuration. Values from a .env file in the working
// directory are exported first, then path (if non-empty) is read as YAML, and
// INVENTORY_* environment variables override both, e.g. INVENTORY_STORE_DRIVER.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config file %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// PathFromEnv returns the config file named by INVENTORY_CONFIG, if any.
func PathFromEnv() string {
	return os.Getenv(envPrefix + "_CONFIG")
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.Path == "" {
			return errors.New("store.path is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Store.URL == "" {
			return errors.New("store.url is required for the postgres driver")
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.HTTP.RateLimit <= 0 || c.HTTP.RateBurst <= 0 {
		return errors.New("http.rate_limit and http.rate_burst must be positive")
	}
	return nil
}

// String returns a string representation of the configuration without secrets.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("\n--- Store ---\n")
	b.WriteString(fmt.Sprintf("  driver: %s\n", c.Store.Driver))
	b.WriteString(fmt.Sprintf("  path: %s\n", c.Store.Path))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Store.Timeout))
	b.WriteString("--- Redis ---\n")
	b.WriteString(fmt.Sprintf("  addr: %s\n", c.Redis.Addr))
	b.WriteString(fmt.Sprintf("  prefix: %s\n", c.Redis.Prefix))
	b.WriteString("--- HTTP ---\n")
	b.WriteString(fmt.Sprintf("  addr: %s\n", c.HTTP.Addr))
	b.WriteString(fmt.Sprintf("  rate: %.2f/s burst %d\n", c.HTTP.RateLimit, c.HTTP.RateBurst))
	b.WriteString("--- Log ---\n")
	b.WriteString(fmt.Sprintf("  level: %s\n", c.Log.Level))
	return b.String()
}
