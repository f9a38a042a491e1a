// Package config handles configuration for the server component,
// including defaults, a JSON or YAML file overlay, environment variables
// and command-line flags.
package config

import "time"

// Config holds runtime settings for the user directory server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - EndpointAddrHTTP: bind address for the REST gateway and /metrics.
//   - SeedSampleData: load the demo users into an empty directory on start.
//   - RateLimitRPS / RateLimitBurst: per-peer token bucket; RPS <= 0 disables it.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: grace period for in-flight HTTP requests on stop.
type Config struct {
	EndpointAddrGRPC string        `envconfig:"GRPC_ADDR"`
	EndpointAddrHTTP string        `envconfig:"HTTP_ADDR"`
	SeedSampleData   bool          `envconfig:"SEED"`
	RateLimitRPS     float64       `envconfig:"RATE_LIMIT_RPS"`
	RateLimitBurst   int           `envconfig:"RATE_LIMIT_BURST"`
	LogLevel         string        `envconfig:"LOG_LEVEL"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":9090"
	c.EndpointAddrHTTP = ":8080"
	c.SeedSampleData = true
	c.RateLimitRPS = 100
	c.RateLimitBurst = 200
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file, the environment and finally command-line
// flags. Malformed input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
