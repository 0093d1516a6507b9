package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	ListenAddr    string `mapstructure:"LISTEN_ADDR"`
	APIBaseURL    string `mapstructure:"API_BASE_URL"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	CookieSecure  bool   `mapstructure:"COOKIE_SECURE"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("LISTEN_ADDR", ":8080")
	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("COOKIE_SECURE", false)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	if AppConfig.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}
}
