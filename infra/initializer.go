package infra

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port        string        `envconfig:"PORT" default:"5000"`
	MongoURI    string        `envconfig:"MONGO_URI"`
	DBUser      string        `envconfig:"DB_USER"`
	DBPass      string        `envconfig:"DB_PASS"`
	DBName      string        `envconfig:"DB_NAME" default:"smartZone"`
	AccessToken string        `envconfig:"ACCESS_TOKEN"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"2h"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string        `envconfig:"LOG_FORMAT" default:"console"`
}

func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found; using environment variables")
	}
}

// LoadConfig populates Config from the environment and rejects a setup
// the server cannot run with.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN is required")
	}
	if cfg.MongoURI == "" && (cfg.DBUser == "" || cfg.DBPass == "") {
		return nil, fmt.Errorf("either MONGO_URI or DB_USER and DB_PASS must be set")
	}
	return &cfg, nil
}

// URI returns the configured connection string, falling back to the
// Atlas cluster URI built from DB_USER and DB_PASS.
func (c *Config) URI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@cluster0.petbnp7.mongodb.net/?retryWrites=true&w=majority",
		c.DBUser,
		c.DBPass,
	)
}
