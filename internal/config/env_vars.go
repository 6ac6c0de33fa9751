package config

import (
	"os"
	"strconv"
)

const (
	appNameVar = "APP_NAME"
	baseURLVar = "FUNIQAI_API_BASE"
	timeoutVar = "FUNIQAI_TIMEOUT_SECONDS"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "FuniqAI")
}

// GetAPIBaseURL returns the backend base URL all API calls are made
// against (e.g. "https://api.funiqai.com")
func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(baseURLVar, "http://localhost:8000")
}

func (EnvVars) GetRequestTimeoutSeconds() int {
	raw := GetEnv(timeoutVar, "30")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 30
	}
	return seconds
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
