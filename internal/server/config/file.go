package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Every field is
// optional; absent keys leave the current value untouched. Durations are
// written as Go duration strings such as "15s".
type FileConfig struct {
	EndpointAddrGRPC *string  `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	EndpointAddrHTTP *string  `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	SeedSampleData   *bool    `json:"seed_sample_data" yaml:"seed_sample_data"`
	RateLimitRPS     *float64 `json:"rate_limit_rps" yaml:"rate_limit_rps"`
	RateLimitBurst   *int     `json:"rate_limit_burst" yaml:"rate_limit_burst"`
	LogLevel         *string  `json:"log_level" yaml:"log_level"`
	ShutdownTimeout  *string  `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// parseFile loads the file named by -c/-config, if any, into config. The
// format is chosen by extension: .yaml and .yml are YAML, anything else is
// JSON. Unreadable or malformed files panic.
func parseFile(config *Config) {

	path := flagx.ConfigFileFlag()

	// nothing to load
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc, err := decodeFile(path, data)
	if err != nil {
		panic(err)
	}

	if err := fc.apply(config); err != nil {
		panic(err)
	}
}

func decodeFile(path string, data []byte) (*FileConfig, error) {
	fc := &FileConfig{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, fc); err != nil {
			return nil, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, fc); err != nil {
			return nil, fmt.Errorf("parse json config %s: %w", path, err)
		}
	}

	return fc, nil
}

func (fc *FileConfig) apply(config *Config) error {
	if fc.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *fc.EndpointAddrGRPC
	}
	if fc.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *fc.EndpointAddrHTTP
	}
	if fc.SeedSampleData != nil {
		config.SeedSampleData = *fc.SeedSampleData
	}
	if fc.RateLimitRPS != nil {
		config.RateLimitRPS = *fc.RateLimitRPS
	}
	if fc.RateLimitBurst != nil {
		config.RateLimitBurst = *fc.RateLimitBurst
	}
	if fc.LogLevel != nil {
		config.LogLevel = *fc.LogLevel
	}
	if fc.ShutdownTimeout != nil {
		d, err := time.ParseDuration(*fc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("shutdown_timeout: %w", err)
		}
		config.ShutdownTimeout = d
	}
	return nil
}
