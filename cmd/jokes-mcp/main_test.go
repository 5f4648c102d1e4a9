package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhobs/jokes-mcp/pkg/config"
	"github.com/rhobs/jokes-mcp/pkg/mcp"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--port", "4000", "--transport", "stdio"}))

	cfg, err := loadConfig(cmd, envFrom(map[string]string{"PORT": "5000", "LOG_LEVEL": "debug"}))
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, config.TransportStdio, cfg.Transport)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_UnsetFlagsKeepEnv(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := loadConfig(cmd, envFrom(map[string]string{"PORT": "5000"}))
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, ":5000", cfg.ListenAddr())
}

func TestLoadConfig_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jokes-mcp.toml")
	require.NoError(t, os.WriteFile(path, []byte("host = \"127.0.0.1\"\nport = 3100\n"), 0o600))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--listen-host", "0.0.0.0"}))

	cfg, err := loadConfig(cmd, envFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:3100", cfg.ListenAddr())
}

func TestLoadConfig_InvalidFlag(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--port", "0"}))

	_, err := loadConfig(cmd, envFrom(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestRun_InvalidConfigExitsWithCode1(t *testing.T) {
	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)
	cmd.SetArgs([]string{"--log-format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "jokes-mcp version "+mcp.Version+"\n", out.String())
}

func TestConfigureLogging(t *testing.T) {
	assert.NoError(t, configureLogging("debug", "json"))
	assert.Error(t, configureLogging("loud", "logfmt"))
	assert.Error(t, configureLogging("info", "xml"))
}
