package config

import (
	"fmt"
	"sync"

	val "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name     string `envconfig:"NAME" default:"hoteldesk"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	} `envconfig:"APP"`

	DB struct {
		// URL is a postgres connection URL without credentials,
		// e.g. postgres://localhost:5432/hotel?sslmode=disable
		URL      string `envconfig:"URL" validate:"required"`
		Username string `envconfig:"USERNAME" validate:"required"`
		Password string `envconfig:"PASSWORD" validate:"required"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		}

		if err = envconfig.Process("", &conf); err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		if err = val.New(val.WithRequiredStructEnabled()).Struct(&conf); err != nil {
			log.Fatal().Err(err).Msg("Incomplete database configuration, set DB_URL, DB_USERNAME and DB_PASSWORD")
		}

		initialized = true
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
