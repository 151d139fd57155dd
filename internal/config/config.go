package config

import (
	"os"
)

type Config struct {
	Port       string
	GinMode    string
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string
	StaticDir  string
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "freelancer"),
		DBPassword: getEnv("DB_PASSWORD", "freelancer"),
		DBName:     getEnv("DB_NAME", "freelancer_directory"),
		DBPath:     getEnv("DB_PATH", "freelancers.db"),
		StaticDir:  getEnv("STATIC_DIR", "web/static"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
