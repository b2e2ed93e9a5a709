package config

import "os"

type Config struct {
	Host  string
	Port  string
	Debug bool

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	SessionKey string
	AdminCode  string
}

// Load reads configuration from the environment with local-development
// defaults. Host, port and debug can be overridden by flags in main.
func Load() Config {
	return Config{
		Host:       getEnv("HOST", "0.0.0.0"),
		Port:       getEnv("PORT", "8111"),
		Debug:      getEnv("DEBUG", "") != "",
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "library"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SessionKey: getEnv("SESSION_KEY", ""),
		AdminCode:  getEnv("ADMIN_CODE", "8111"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
