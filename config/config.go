package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. FLEETDASH_WEB_PORT.
const EnvPrefix = "FLEETDASH_"

type Config struct {
	Web       WebConfig       `yaml:"web" envPrefix:"WEB_"`
	Log       LogConfig       `yaml:"log" envPrefix:"LOG_"`
	Database  DatabaseConfig  `yaml:"database" envPrefix:"DATABASE_"`
	Redis     RedisConfig     `yaml:"redis" envPrefix:"REDIS_"`
	Messaging MessagingConfig `yaml:"messaging" envPrefix:"MESSAGING_"`
	Live      LiveConfig      `yaml:"live" envPrefix:"LIVE_"`
	Export    ExportConfig    `yaml:"export" envPrefix:"EXPORT_"`
}

type WebConfig struct {
	Host string `yaml:"host" env:"HOST"`
	Port int    `yaml:"port" env:"PORT"`
	// SessionSecret signs the UI state cookie. Empty means a random key per process.
	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"` // console or json
}

type DatabaseConfig struct {
	Driver   string         `yaml:"driver" env:"DRIVER"` // memory, sqlite or postgres
	SQLite   SQLiteConfig   `yaml:"sqlite" envPrefix:"SQLITE_"`
	Postgres PostgresConfig `yaml:"postgres" envPrefix:"POSTGRES_"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" env:"PATH"`
}

type PostgresConfig struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	Database string `yaml:"database" env:"DATABASE"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
	// DSN replaces the fields above when set.
	DSN string `yaml:"dsn" env:"DSN"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED"`
	Address  string `yaml:"address" env:"ADDRESS"`
	Password string `yaml:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" env:"DB"`
}

type MessagingConfig struct {
	Backend string      `yaml:"backend" env:"BACKEND"` // "", mqtt or kafka
	Topic   string      `yaml:"topic" env:"TOPIC"`
	Source  string      `yaml:"source" env:"SOURCE"`
	MQTT    MQTTConfig  `yaml:"mqtt" envPrefix:"MQTT_"`
	Kafka   KafkaConfig `yaml:"kafka" envPrefix:"KAFKA_"`
}

type MQTTConfig struct {
	Broker   string `yaml:"broker" env:"BROKER"`
	ClientID string `yaml:"client_id" env:"CLIENT_ID"`
	Username string `yaml:"username" env:"USERNAME"`
	Password string `yaml:"password" env:"PASSWORD"`
	QoS      byte   `yaml:"qos" env:"QOS"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers" env:"BROKERS"`
}

type LiveConfig struct {
	// Interval drives the dashboard assignment counts.
	Interval time.Duration `yaml:"interval" env:"INTERVAL"`
	// ChartInterval drives the fuel and vendor card series.
	ChartInterval time.Duration `yaml:"chart_interval" env:"CHART_INTERVAL"`
	// Seed fixes the widget random sequence. Zero seeds from the clock.
	Seed uint64 `yaml:"seed" env:"SEED"`
}

type ExportConfig struct {
	S3 S3Config `yaml:"s3" envPrefix:"S3_"`
}

// S3Config points export uploads at an S3-compatible bucket. An empty
// endpoint disables uploads.
type S3Config struct {
	Endpoint  string        `yaml:"endpoint" env:"ENDPOINT"`
	Bucket    string        `yaml:"bucket" env:"BUCKET"`
	AccessKey string        `yaml:"access_key" env:"ACCESS_KEY"`
	SecretKey string        `yaml:"secret_key" env:"SECRET_KEY"`
	UseSSL    bool          `yaml:"use_ssl" env:"USE_SSL"`
	Expiry    time.Duration `yaml:"expiry" env:"EXPIRY"`
}

func Defaults() *Config {
	return &Config{
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Database: DatabaseConfig{
			Driver: "memory",
			SQLite: SQLiteConfig{Path: "fleetdash.db"},
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				Database: "fleetdash",
				User:     "fleetdash",
				SSLMode:  "disable",
			},
		},
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
		Messaging: MessagingConfig{
			Topic:  "fleetdash/events",
			Source: "fleetdash",
			MQTT: MQTTConfig{
				Broker:   "tcp://localhost:1883",
				ClientID: "fleetdash",
				QoS:      1,
			},
			Kafka: KafkaConfig{Brokers: []string{"localhost:9092"}},
		},
		Live: LiveConfig{
			Interval:      5 * time.Second,
			ChartInterval: 3 * time.Second,
		},
		Export: ExportConfig{
			S3: S3Config{
				Bucket: "fleetdash-exports",
				Expiry: 24 * time.Hour,
			},
		},
	}
}

// Load reads path over the defaults and then applies FLEETDASH_* environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "memory", "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	switch c.Messaging.Backend {
	case "", "mqtt", "kafka":
	default:
		return fmt.Errorf("unsupported messaging backend: %s", c.Messaging.Backend)
	}
	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return fmt.Errorf("invalid web port: %d", c.Web.Port)
	}
	if c.Live.Interval < 100*time.Millisecond {
		return fmt.Errorf("live interval too short: %s", c.Live.Interval)
	}
	if c.Live.ChartInterval < 100*time.Millisecond {
		return fmt.Errorf("live chart interval too short: %s", c.Live.ChartInterval)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Web.Host, c.Web.Port)
}
