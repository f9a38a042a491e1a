package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("loads from json", func(t *testing.T) {
		path := writeTemp(t, "cfg.json", `{
			"endpoint_addr_grpc": "www.example:9000",
			"endpoint_addr_http": "www.example:9001",
			"seed_sample_data": false,
			"rate_limit_rps": 0,
			"rate_limit_burst": 4,
			"log_level": "debug",
			"shutdown_timeout": "1m"
		}`)
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "www.example:9001", cfg.EndpointAddrHTTP)
		assert.False(t, cfg.SeedSampleData)
		assert.Zero(t, cfg.RateLimitRPS)
		assert.Equal(t, 4, cfg.RateLimitBurst)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, time.Minute, cfg.ShutdownTimeout)
	})

	t.Run("loads from yaml, absent keys untouched", func(t *testing.T) {
		path := writeTemp(t, "cfg.yml", "endpoint_addr_grpc: \":1234\"\nrate_limit_rps: 2.5\n")
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, ":1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, 2.5, cfg.RateLimitRPS)
		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.True(t, cfg.SeedSampleData)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrGRPC: "defaults:1234", LogLevel: "warn"}
		parseFile(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := writeTemp(t, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("bad duration → panics", func(t *testing.T) {
		bad := writeTemp(t, "bad.yaml", "shutdown_timeout: soon\n")
		os.Args = []string{"testbin", "-c", bad}

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}

		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
