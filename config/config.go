package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server Settings
	AppName string `envconfig:"APP_NAME" default:"Shop Backend"`
	Debug   bool   `envconfig:"DEBUG" default:"true"`
	Host    string `envconfig:"HOST" default:"0.0.0.0"`
	AppPort string `envconfig:"PORT" default:"8000"`

	// Database Settings
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// CORS Settings
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173,http://127.0.0.1:3000"`

	// Static Files
	StaticDir string `envconfig:"STATIC_DIR" default:"./static"`
	ImagesDir string `envconfig:"IMAGES_DIR" default:"./static/images"`
}

// LoadConfig reads .env when present and resolves the configuration from
// the environment. The value is built once at startup and passed down
// explicitly.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
