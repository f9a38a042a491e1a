package config

import "github.com/kelseyhightower/envconfig"

// EnvPrefix prefixes every environment variable read by parseEnv.
const EnvPrefix = "USERDIR"

// parseEnv overlays USERDIR_* environment variables onto config. Unset
// variables keep the current value; malformed ones panic.
func parseEnv(config *Config) {
	if err := envconfig.Process(EnvPrefix, config); err != nil {
		panic(err)
	}
}
