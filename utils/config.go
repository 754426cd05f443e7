package utils

import "github.com/spf13/viper"

// GetEnv returns the configured runtime environment.
func GetEnv() string {
	if env := viper.GetString("ENV"); env != "" {
		return env
	}
	return "development"
}

// IsProduction reports whether the service runs with production settings.
func IsProduction() bool {
	return GetEnv() == "production"
}
