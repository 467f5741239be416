package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config lookup at an empty directory and clears
// env overrides that would leak in from the developer's shell.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(ConfigEnv, "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", c.Tabs.File)
	assert.True(t, c.UI.Mouse)
	assert.True(t, c.UI.AltScreen)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "tabview", c.Trace.ServiceName)
	assert.Equal(t, "", c.Trace.Endpoint)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
tabs:
  file: /tmp/tabs.yaml
ui:
  mouse: false
  alt_screen: false
log:
  file: /tmp/tabview.log
  level: debug
trace:
  endpoint: localhost:4318
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tabs.yaml", c.Tabs.File)
	assert.False(t, c.UI.Mouse)
	assert.False(t, c.UI.AltScreen)
	assert.Equal(t, "/tmp/tabview.log", c.Log.File)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "localhost:4318", c.Trace.Endpoint)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TABVIEW_LOG_LEVEL", "warn")
	t.Setenv("TABVIEW_TABS_FILE", "/srv/tabs.yaml")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "/srv/tabs.yaml", c.Tabs.File)
	assert.Equal(t, "collector:4318", c.Trace.Endpoint)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
