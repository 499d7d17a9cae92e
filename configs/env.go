package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	LogLevel        string
}

var Env *EnvConfig

func init() {
	// .env is optional; real environment variables win over it
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "go-weather"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", "/go-weather"),
		LogLevel:        getStringOrDefault("LOG_LEVEL", "info"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
