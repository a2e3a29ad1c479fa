package cmd

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\nport: 5555\nsize: 12\nlog_level: warn\n"), 0644))

	require.NoError(t, rootCmd.ParseFlags([]string{
		"--config", path,
		"--port", "6000",
		"--size", "7",
		"--log-level", "debug",
	}))

	config, err := resolveConfig(rootCmd)
	require.NoError(t, err)
	assert.True(t, config.Debug)
	assert.Equal(t, 6000, config.Port)
	assert.Equal(t, 7, config.Size)
	assert.Equal(t, "debug", config.LogLevel)

	// --size is still set from above
	require.NoError(t, rootCmd.ParseFlags([]string{"--file", "board.txt"}))
	_, err = resolveConfig(rootCmd)
	assert.Error(t, err)
}

func TestLogLevelValue(t *testing.T) {
	flag := rootCmd.Flags().Lookup("log-level")
	require.NotNil(t, flag)

	value := flag.Value
	assert.Equal(t, "level", value.Type())
	assert.Error(t, value.Set("loud"))
}
