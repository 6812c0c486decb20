package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymconsole/internal/core"
	"gymconsole/internal/role"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.SeedEnabled)
	assert.Equal(t, role.Trainer, cfg.Role())
	assert.Equal(t, core.MissingIgnore, cfg.MissingPolicy())
	assert.Equal(t, "Asia/Seoul", cfg.Location().String())
	assert.Equal(t, "gymconsole", cfg.MetricsNamespace)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("GYM_LOG_LEVEL", "debug")
	t.Setenv("GYM_SEED_ENABLED", "false")
	t.Setenv("GYM_DEFAULT_ROLE", "owner")
	t.Setenv("GYM_UPDATE_MISSING", "error")
	t.Setenv("GYM_TIMEZONE", "UTC")
	t.Setenv("GYM_METRICS_NAMESPACE", "studio")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.SeedEnabled)
	assert.Equal(t, role.Owner, cfg.Role())
	assert.Equal(t, core.MissingError, cfg.MissingPolicy())
	assert.Equal(t, "UTC", cfg.Location().String())
	assert.Equal(t, "studio", cfg.MetricsNamespace)
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Setenv("GYM_DEFAULT_ROLE", "janitor")
	t.Setenv("GYM_UPDATE_MISSING", "upsert")
	t.Setenv("GYM_TIMEZONE", "Mars/Olympus")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GYM_DEFAULT_ROLE")
	assert.Contains(t, err.Error(), "GYM_UPDATE_MISSING")
	assert.Contains(t, err.Error(), "GYM_TIMEZONE")

	t.Setenv("GYM_SEED_ENABLED", "maybe")
	_, err = Parse()
	assert.Error(t, err)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GYM_DEFAULT_ROLE=admin\n"), 0o600))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("GYM_DEFAULT_ROLE") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, role.Admin, cfg.Role())
}

func TestFallbacks(t *testing.T) {
	cfg := Config{UpdateMissing: "bogus", Timezone: "Nowhere/Zone"}
	assert.Equal(t, core.MissingIgnore, cfg.MissingPolicy())
	assert.Equal(t, "UTC", cfg.Location().String())
	assert.Equal(t, role.Default, cfg.Role())
}
