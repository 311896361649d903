package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// RequireString is for keys that must never fall back to a default, such as
// the token signing key. A missing or empty value is a fatal
// misconfiguration surfaced to the caller.
func RequireString(config map[string]string, key string) (string, error) {
	val, ok := config[key]
	if !ok || val == "" {
		return "", fmt.Errorf("required configuration %s is not set", key)
	}
	return val, nil
}

func RequireInt(config map[string]string, key string) (int, error) {
	s, err := RequireString(config, key)
	if err != nil {
		return 0, err
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("configuration %s must be an integer: %w", key, err)
	}
	return asInt, nil
}
