package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		expectedErr error
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{"TOKEN_AUTH_SECRET": "secret"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ":8080", cfg.HTTPAddr)
				assert.Equal(t, "/media/", cfg.MediaURL)
				assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
				assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
				assert.False(t, cfg.Admin.Bootstrap)
				assert.Equal(t, "admin", cfg.Admin.Username)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"TOKEN_AUTH_SECRET":    "secret",
				"HTTP_ADDR":            ":9000",
				"TOKEN_TTL":            "30m",
				"CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
				"ADMIN_BOOTSTRAP":      "true",
				"ADMIN_USERNAME":       "root",
				"ADMIN_PASSWORD":       "pass",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ":9000", cfg.HTTPAddr)
				assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
				assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
				assert.True(t, cfg.Admin.Bootstrap)
				assert.Equal(t, "root", cfg.Admin.Username)
				assert.Equal(t, "pass", cfg.Admin.Password)
			},
		},
		{
			name:        "missing token secret",
			env:         map[string]string{"TOKEN_AUTH_SECRET": ""},
			expectedErr: ErrMissingTokenSecret,
		},
		{
			name: "bootstrap without password",
			env: map[string]string{
				"TOKEN_AUTH_SECRET": "secret",
				"ADMIN_BOOTSTRAP":   "true",
				"ADMIN_PASSWORD":    "",
			},
			expectedErr: ErrMissingAdminPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
