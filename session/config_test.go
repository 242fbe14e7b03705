package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigValidFillsDefaults(t *testing.T) {
	cfg := Config{Port: "/dev/ttyUSB0"}
	require.NoError(t, cfg.Valid())

	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, 6, cfg.MaxRetriesTransport)
	require.Equal(t, 3, cfg.MaxRetriesSession)
	require.Equal(t, 19200, cfg.Baudrate)
}

func TestConfigValidRejectsMissingPort(t *testing.T) {
	cfg := Config{}
	require.Error(t, cfg.Valid())
}

func TestConfigValidRejectsOutOfRangeTimeout(t *testing.T) {
	cfg := Config{Port: "/dev/ttyUSB0", Timeout: 500 * time.Second}
	require.Error(t, cfg.Valid())
}

func TestConfigValidRejectsOutOfRangeBaudrate(t *testing.T) {
	cfg := Config{Port: "/dev/ttyUSB0", Baudrate: 300}
	require.Error(t, cfg.Valid())
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controller.yaml")
	contents := "port: /dev/ttyS0\ntimeout: 10s\nbaudrate: 19200\nmax_retries_transport: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/dev/ttyS0", cfg.Port)
	require.Equal(t, 10*time.Second, cfg.Timeout)
	require.Equal(t, 4, cfg.MaxRetriesTransport)
	require.Equal(t, 3, cfg.MaxRetriesSession) // default filled
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path.yaml")
	require.Error(t, err)
}
