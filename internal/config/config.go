package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/futureday25/viberlab/internal/domain"
)

type Config struct {
	// Core
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Server
	Port int `env:"PORT" envDefault:"4000"`

	// Login gate
	LoginUser     string `env:"APP_LOGIN_USER" envDefault:"fd25"`
	LoginPassword string `env:"APP_LOGIN_PASSWORD" envDefault:"fd25"`

	// Azure OpenAI deployment
	AzureAPIKey     string `env:"AZURE_OPENAI_API_KEY"`
	AzureEndpoint   string `env:"AZURE_ENDPOINT" envDefault:"https://swedencentral.api.cognitive.microsoft.com/"`
	AzureDeployment string `env:"AZURE_DEPLOYMENT" envDefault:"fibu3-gpt5-prod"`
	AzureAPIVersion string `env:"AZURE_API_VERSION" envDefault:"2025-01-01-preview"`

	// Logging
	Debug bool `env:"DEBUG" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DefaultCompletionConfig is the completion config a fresh workspace starts
// with. The credential is deliberately absent until a successful login.
func (c *Config) DefaultCompletionConfig() domain.CompletionConfig {
	return domain.CompletionConfig{
		Endpoint:   c.AzureEndpoint,
		Deployment: c.AzureDeployment,
		APIVersion: c.AzureAPIVersion,
	}
}
