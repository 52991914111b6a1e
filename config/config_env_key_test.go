package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"superAdminEmail": "",
		},
		"cache": map[string]any{
			"freshnessWindow": "5m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_SUPERADMINEMAIL", want: "auth.superAdminEmail"},
		{envKey: "CACHE_FRESHNESSWINDOW", want: "cache.freshnessWindow"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Cache)
	assert.Equal(t, 5*time.Minute, cfg.Cache.FreshnessWindow)
	assert.Equal(t, "mem://role-changes", cfg.Realtime.RoleTopicURL)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.NotNil(t, cfg.Auth)
	assert.NotNil(t, cfg.PubSub)
}

func TestApplyDefaults_KeepsConfiguredWindow(t *testing.T) {
	cfg := &Config{Cache: &CacheConfig{FreshnessWindow: time.Minute}}

	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.Cache.FreshnessWindow)
}

func TestLoadWithEnv_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("AUTH_SUPERADMINEMAIL", "root@example.com")
	t.Setenv("CACHE_FRESHNESSWINDOW", "90s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "root@example.com", cfg.Auth.SuperAdminEmail)
	assert.Equal(t, 90*time.Second, cfg.Cache.FreshnessWindow)
	assert.Equal(t, "swapmarket", cfg.Env.ServiceName)
}
