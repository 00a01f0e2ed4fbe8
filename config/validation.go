package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the required settings are present. S3 and
// Redis are optional features; their settings are only validated when
// the feature is enabled.
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return ValidationError{Field: "JWT_SECRET", Message: "must be set"}
	}
	if cfg.DBUser == "" {
		return ValidationError{Field: "DB_USER", Message: "must be set"}
	}
	if cfg.DBName == "" {
		return ValidationError{Field: "DB_NAME", Message: "must be set"}
	}
	if IsProduction() && cfg.DBSSLMode == "disable" {
		return ValidationError{Field: "DB_SSL_MODE", Message: "must not be disabled in production"}
	}
	if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
		return ValidationError{Field: "AWS_REGION", Message: "must be set when S3_BUCKET_NAME is set"}
	}
	return nil
}
