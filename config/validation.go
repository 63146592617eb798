package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration carries everything the
// application needs to start. Sensitive fields are required everywhere
// except development, where local defaults are acceptable.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"SERVER_PORT": cfg.ServerPort,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_NAME":     cfg.DBName,
		"REDIS_HOST":  cfg.RedisHost,
		"REDIS_PORT":  cfg.RedisPort,
	}
	for field, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("required configuration %s is not set", field))
		}
	}

	if !IsDevelopment() {
		if cfg.DBUser == "" {
			errors = append(errors, "DB_USER or db_user secret is required")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD or db_password secret is required")
		}
		if cfg.JWTSecret == "" {
			errors = append(errors, "JWT_SECRET or jwt_secret secret is required")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
