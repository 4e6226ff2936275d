package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RoyaleAPIKey     string        `env:"ROYALE_API_KEY,required,notEmpty"`
	RoyaleAPIBaseURL string        `env:"ROYALE_API_BASE_URL" envDefault:"https://api.clashroyale.com/v1"`
	DBPath           string        `env:"DB_PATH" envDefault:"royale.db"`
	ServerPort       string        `env:"SERVER_PORT" envDefault:"8080"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	CacheTTL         time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	APIRatePerSecond float64       `env:"API_REQUESTS_PER_SECOND" envDefault:"10"`
	APIBurst         int           `env:"API_BURST" envDefault:"5"`
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	logger.Info().
		Str("api_base_url", cfg.RoyaleAPIBaseURL).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("cache_ttl", cfg.CacheTTL).
		Float64("api_rate", cfg.APIRatePerSecond).
		Int("api_burst", cfg.APIBurst).
		Msg("configuration loaded")

	return &cfg, nil
}

var Module = fx.Provide(Load)
