package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yellinzero/funiqai-go/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.New()
	require.Equal(t, "FuniqAI", cfg.GetAppName())
	require.Equal(t, "http://localhost:8000", cfg.GetAPIBaseURL())
	require.Equal(t, 30, cfg.GetRequestTimeoutSeconds())
	require.Equal(t, "DEV", cfg.GetEnv())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "CustomApp")
	t.Setenv("FUNIQAI_API_BASE", "https://api.funiqai.com")
	t.Setenv("FUNIQAI_TIMEOUT_SECONDS", "5")
	t.Setenv("ENV", "PROD")

	cfg := config.New()
	require.Equal(t, "CustomApp", cfg.GetAppName())
	require.Equal(t, "https://api.funiqai.com", cfg.GetAPIBaseURL())
	require.Equal(t, 5, cfg.GetRequestTimeoutSeconds())
	require.Equal(t, "PROD", cfg.GetEnv())
}

func TestTimeoutFallsBackOnBadValues(t *testing.T) {
	t.Setenv("FUNIQAI_TIMEOUT_SECONDS", "not-a-number")
	require.Equal(t, 30, config.New().GetRequestTimeoutSeconds())

	t.Setenv("FUNIQAI_TIMEOUT_SECONDS", "-1")
	require.Equal(t, 30, config.New().GetRequestTimeoutSeconds())
}
