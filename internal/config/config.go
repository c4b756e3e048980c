package config

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all runtime settings, sourced from the environment.
type Config struct {
	Port          string
	Env           string
	DatabaseURL   string
	ModelPath     string
	ModelMetaPath string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("GO_ENV", "development")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("MODEL_PATH", "artifacts/heart_model.txt")
	v.SetDefault("MODEL_META_PATH", "artifacts/heart_model_meta.json")
	v.AutomaticEnv()

	return &Config{
		Port:          v.GetString("PORT"),
		Env:           v.GetString("GO_ENV"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		ModelPath:     v.GetString("MODEL_PATH"),
		ModelMetaPath: v.GetString("MODEL_META_PATH"),
	}
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}
