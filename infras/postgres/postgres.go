package postgres

import (
	"net/url"

	"hoteldesk/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Connection struct {
	DB *sqlx.DB
}

// New opens the single connection the desk works over. A failed initial
// connection is fatal, there is no menu to fall back to.
func New(config *config.Config) *Connection {
	descriptor, err := buildDescriptor(config)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid database URL")
	}

	sqlDB, err := sqlx.Connect("postgres", descriptor)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed connecting to database")
	}

	// One operator, one in-flight statement.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	log.Info().Str("url", config.DB.URL).Msg("Connected to database")

	return &Connection{DB: sqlDB}
}

// buildDescriptor injects the configured credentials into the connection URL.
func buildDescriptor(config *config.Config) (string, error) {
	parsed, err := url.Parse(config.DB.URL)
	if err != nil {
		return "", err
	}

	parsed.User = url.UserPassword(config.DB.Username, config.DB.Password)

	return parsed.String(), nil
}
