package config

import "os"

// GetEnv returns the value of an environment variable, empty when unset.
// .env loading happens once at startup in main.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOr returns the value of an environment variable or a fallback.
func GetEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
