package config_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/goby-forms/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ADDR", "APP_NAME", "SESSION_SECRET", "LOG_FORMAT",
		"LOG_LEVEL", "APP_STATIC_DIR", "POST_RATE_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetAddr())
	assert.Equal(t, "Goby Forms", cfg.GetAppName())
	assert.Equal(t, "text", cfg.GetLogFormat())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, 10, cfg.GetPostRateLimit())
	assert.Empty(t, cfg.GetStaticDir())
	assert.GreaterOrEqual(t, len(cfg.GetSessionSecret()), 16)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ADDR", "127.0.0.1:9000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("POST_RATE_LIMIT", "0")
	t.Setenv("APP_STATIC_DIR", "/srv/static")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 0, cfg.PostRateLimit)
	assert.Equal(t, "/srv/static", cfg.StaticDir)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"unknown log level", "LOG_LEVEL", "trace"},
		{"short session secret", "SESSION_SECRET", "short"},
		{"negative rate limit", "POST_RATE_LIMIT", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.FromEnv()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}

	t.Run("non-numeric rate limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("POST_RATE_LIMIT", "lots")

		_, err := config.FromEnv()
		assert.ErrorContains(t, err, "POST_RATE_LIMIT")
	})
}
