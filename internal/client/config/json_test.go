package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"accountcli"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestParseJson_OverridesPresentFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"server_endpoint_url": "https://accounts.example.org",
		"request_timeout": "5s",
		"token_ttl": "48h"
	}`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "https://accounts.example.org", cfg.ServerEndpointURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, 48*time.Hour, cfg.TokenTTL)
	require.Equal(t, "account.db", cfg.DatabaseDSN, "missing fields keep their previous values")
}

func TestParseJson_NoFileFlagIsNoop(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://127.0.0.1:8080", cfg.ServerEndpointURL)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}

func TestParseJson_MalformedFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}
