package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePort(t *testing.T) {
	tests := []struct {
		port    string
		wantErr bool
	}{
		{port: "8080"},
		{port: "1"},
		{port: "65535"},
		{port: "0", wantErr: true},
		{port: "65536", wantErr: true},
		{port: "http", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			err := validatePort(tt.port)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV_PATH", t.TempDir()+"/missing.env")
	t.Setenv("ENV", "production")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("USE_HTTP2", "")
		t.Setenv("CORS_ORIGINS", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.False(t, cfg.UseHttp2)
		assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("explicit", func(t *testing.T) {
		t.Setenv("PORT", "3000")
		t.Setenv("USE_HTTP2", "true")
		t.Setenv("CORS_ORIGINS", " https://a.example.com, ,https://b.example.com ")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.True(t, cfg.UseHttp2)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CorsOrigins)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "99999")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
