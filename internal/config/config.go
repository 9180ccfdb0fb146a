package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings for the analyzer. It is read once
// at startup and passed by value; nothing mutates it afterwards.
type Config struct {
	BaseURL string // model endpoint base URL, e.g. https://api.openai.com/v1
	APIKey  string
	Model   string
	Port    string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present. BASE_URL, API_KEY and MODEL_NAME are required; the
// process must not start without them.
func Load() (Config, error) {
	// A missing .env file is fine; the variables may come from the real env.
	_ = godotenv.Load()

	cfg := Config{
		BaseURL: os.Getenv("BASE_URL"),
		APIKey:  os.Getenv("API_KEY"),
		Model:   os.Getenv("MODEL_NAME"),
		Port:    os.Getenv("PORT"),
	}
	if cfg.BaseURL == "" || cfg.APIKey == "" || cfg.Model == "" {
		return Config{}, fmt.Errorf("please set BASE_URL, API_KEY, and MODEL_NAME in .env")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}
