package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the service configuration, loaded from the environment.
// cmd/api autoloads a .env file before this runs.
type Config struct {
	App struct {
		Port int `envconfig:"PORT" default:"8080"`
	}

	Auth struct {
		OperatorEmail    string `envconfig:"OPERATOR_EMAIL" default:"admin@rampaneli.com"`
		OperatorPassword string `envconfig:"OPERATOR_PASSWORD" default:"admin123"`
		JWTSecret        string `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
		TokenTTLHours    int    `envconfig:"TOKEN_TTL_HOURS" default:"12"`
	}

	MercadoPago struct {
		AccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
