package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

const (
	EnvProd = "prod"
	EnvDev  = "dev"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"5001"`
	AppEnv           string `env:"APP_ENV" envDefault:"dev"`
	PostgresDSNProd  string `env:"POSTGRES_DSN_PROD"`
	PostgresDSNDev   string `env:"POSTGRES_DSN_DEV"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	DBResetOnStart   bool   `env:"DB_RESET_ON_START" envDefault:"false"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	UploadDir        string `env:"UPLOAD_DIR" envDefault:"./uploads/vacation_images"`
	AdminEmail       string `env:"ADMIN_EMAIL"`
	Session          SessionConfig
	Photos           PhotosConfig
	Kafka            Kafka
}

type SessionConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TTL       time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

type PhotosConfig struct {
	SweepInterval time.Duration `env:"PHOTO_SWEEP_INTERVAL" envDefault:"6h"`
	SweepGrace    time.Duration `env:"PHOTO_SWEEP_GRACE" envDefault:"1h"`
}

type Kafka struct {
	Enabled             bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers             []string `env:"KAFKA_BROKERS"`
	VacationEventsTopic string   `env:"KAFKA_VACATION_EVENTS_TOPIC" envDefault:"vacation-events"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	if _, err := c.DSN(); err != nil {
		return Config{}, err
	}

	if c.Session.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return Config{}, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is set")
	}

	return c, nil
}

// DSN returns the connection string of the environment selected by APP_ENV.
func (c Config) DSN() (string, error) {
	var dsn string

	switch c.AppEnv {
	case EnvProd:
		dsn = c.PostgresDSNProd
	case EnvDev:
		dsn = c.PostgresDSNDev
	default:
		return "", fmt.Errorf("unknown APP_ENV %q", c.AppEnv)
	}

	if dsn == "" {
		return "", fmt.Errorf("postgres dsn for %s environment is empty", c.AppEnv)
	}

	return dsn, nil
}
