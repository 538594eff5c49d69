package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "50061", cfg.GRPCPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "four_band", cfg.JudgmentPolicy)
	assert.Equal(t, "weight", cfg.MetabolicPolicy)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("JUDGMENT_POLICY", "three_band")
	t.Setenv("LOG_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "three_band", cfg.JudgmentPolicy)
	assert.True(t, cfg.LogDebug)
}

func TestLoad_InvalidNumbersKeepDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("SESSION_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
http_port: "8181"
redis_addr: "cache:6379"
judgment_policy: three_band
metabolic_policy: caloric
session_ttl: 2h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_PORT", "8282")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8282", cfg.HTTPPort, "env wins over file")
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, "three_band", cfg.JudgmentPolicy)
	assert.Equal(t, "caloric", cfg.MetabolicPolicy)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.JudgmentPolicy = "five_band"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MetabolicPolicy = "protein"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.SessionTTL = 0
	assert.Error(t, cfg.Validate())

	assert.NoError(t, Default().Validate())
}
