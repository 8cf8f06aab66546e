package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CACHE_DRIVER", "memory")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("JWT_ACCESS_EXPIRY", "15m")
	t.Setenv("DB_PORT", "5439")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 5439, cfg.Database.Port)
}

func TestLoad_InvalidDatabasePort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid DB_PORT")
}

func TestLoad_UnparsableDurationFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown cache driver",
			env:     map[string]string{"CACHE_DRIVER": "memcached"},
			wantErr: "CACHE_DRIVER",
		},
		{
			name:    "production with default jwt secret",
			env:     map[string]string{"APP_ENV": "production"},
			wantErr: "JWT_SECRET",
		},
		{
			name: "production fully configured",
			env:  map[string]string{"APP_ENV": "production", "JWT_SECRET": "s3cret", "DB_PASSWORD": "pw"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ProductionRequiresDatabasePassword(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.App.Environment = "production"
	cfg.JWT.Secret = "s3cret"
	cfg.Database.Password = ""

	assert.EqualError(t, cfg.Validate(), "DB_PASSWORD must be set in production")
}
