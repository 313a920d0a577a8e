package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tutorbook?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, SlotPolicyLoose, cfg.SlotPolicy)
	assert.False(t, cfg.ExclusiveSlots())
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tutorbook?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.1.0.0/16")

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "10.1.0.0/16"}, cfg.TrustedProxies)
}

func TestLoad_ExclusivePolicy(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tutorbook?sslmode=disable")
	t.Setenv("SLOT_POLICY", "exclusive")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.ExclusiveSlots())
}

func TestValidate(t *testing.T) {
	const dsn = "postgres://localhost/tutorbook"

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"loose", Config{DatabaseURL: dsn, SlotPolicy: SlotPolicyLoose, RateLimitRPS: 1, RateLimitBurst: 1}, false},
		{"exclusive", Config{DatabaseURL: dsn, SlotPolicy: SlotPolicyExclusive, RateLimitRPS: 1, RateLimitBurst: 1}, false},
		{"unknown policy", Config{DatabaseURL: dsn, SlotPolicy: "strict", RateLimitRPS: 1, RateLimitBurst: 1}, true},
		{"zero rps", Config{DatabaseURL: dsn, SlotPolicy: SlotPolicyLoose, RateLimitRPS: 0, RateLimitBurst: 1}, true},
		{"missing dsn", Config{SlotPolicy: SlotPolicyLoose, RateLimitRPS: 1, RateLimitBurst: 1}, true},
		{"zero burst", Config{DatabaseURL: dsn, SlotPolicy: SlotPolicyLoose, RateLimitRPS: 1, RateLimitBurst: 0}, true},
		{"proxy ip and cidr", Config{DatabaseURL: dsn, SlotPolicy: SlotPolicyLoose, RateLimitRPS: 1, RateLimitBurst: 1, TrustedProxies: []string{"10.0.0.1", "172.16.0.0/12"}}, false},
		{"bad proxy", Config{DatabaseURL: dsn, SlotPolicy: SlotPolicyLoose, RateLimitRPS: 1, RateLimitBurst: 1, TrustedProxies: []string{"gateway"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
