package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9876", cfg.Server.Address)
	assert.Equal(t, 2*time.Second, cfg.Admin.CopiedTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "sitectl.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  address: ":8080"
admin:
  strict: true
  copied_ttl: 5s
content:
  path: content.yml
`), 0o600))
	t.Setenv("SITECONTENT_ADDRESS", ":9090")
	t.Setenv("SITECONTENT_LOG_OUTPUTS", "stdout, stderr")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.True(t, cfg.Admin.Strict)
	assert.Equal(t, 5*time.Second, cfg.Admin.CopiedTTL)
	assert.Equal(t, "content.yml", cfg.Content.Path)
	assert.Equal(t, []string{"stdout", "stderr"}, cfg.Logging.OutputPaths)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SITECONTENT_LOCALE=es\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SITECONTENT_LOCALE") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Admin.Locale)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Server.Address = ""
	cfg.Admin.CopiedTTL = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.address")
	assert.Contains(t, err.Error(), "copied_ttl")
}
