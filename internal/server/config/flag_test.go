package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-w", "127.0.0.1:8080", "-seed=false",
			"-r", "5", "-b", "9", "-l", "debug", "-t", "3",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrGRPC: "127.0.0.1:9090",
				EndpointAddrHTTP: "127.0.0.1:8080",
				SeedSampleData:   false,
				RateLimitRPS:     5,
				RateLimitBurst:   9,
				LogLevel:         "debug",
				ShutdownTimeout:  3 * time.Second,
			}},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"}},
		{name: "bad number panics", args: []string{"cmd", "-b", "many"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeoutWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-a", ":1"}

	config := &Config{ShutdownTimeout: 1500 * time.Millisecond}
	parseFlags(config)

	assert.Equal(t, 1500*time.Millisecond, config.ShutdownTimeout)
	assert.Equal(t, ":1", config.EndpointAddrGRPC)
}

func TestParseFlags_TimeoutFlagOverrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-t", "0"}

	config := &Config{ShutdownTimeout: 500 * time.Millisecond}
	parseFlags(config)

	assert.Equal(t, time.Duration(0), config.ShutdownTimeout)
}
