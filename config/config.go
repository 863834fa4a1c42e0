// Package config loads host process configuration: listen address,
// default scenario/seed, and per-tick sandbox deadline. Grounded on
// Knoblauchpilze-sogserver's pkg/arguments (arguments.go,
// server_config.go), which layers spf13/viper config-file reading under
// environment-variable overrides and stamps the result with a fresh
// google/uuid instance identifier. Trimmed of that teacher's cloud/AWS
// metadata lookup, which has nothing to attach to in a simulation host.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/oortcore/simulator/sandbox"
)

// Config is the host process's runtime configuration.
type Config struct {
	// InstanceID identifies this process instance in logs, generated
	// fresh on every Load (sogserver's arguments.AppMetadata.InstanceID).
	InstanceID string `json:"instance_id"`
	Environment string `json:"environment"`

	// ListenAddr is the host:port the websocket/HTTP server binds to.
	ListenAddr string `json:"listen_addr"`

	// DefaultScenario and DefaultSeed seed a run when a client request
	// doesn't specify one.
	DefaultScenario string `json:"default_scenario"`
	DefaultSeed     uint32 `json:"default_seed"`

	// ControllerDeadline bounds a single controller tick (spec.md §5);
	// zero means sandbox.DefaultDeadline.
	ControllerDeadline time.Duration `json:"controller_deadline"`
}

// Load reads configFile (without extension) from the working directory
// or a data/config directory, the same search path as the teacher's
// arguments.Parse, then layers ENV_-prefixed environment variables over
// it. A missing config file is tolerated: every field falls back to its
// default, matching a scenario run launched with no file at all.
func Load(configFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ENV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("default_scenario", "tutorial01")
	v.SetDefault("default_seed", 0)
	v.SetDefault("controller_deadline_ms", int64(sandbox.DefaultDeadline/time.Millisecond))

	if configFile != "" {
		v.SetConfigName(configFile)
		v.AddConfigPath(".")
		v.AddConfigPath("data/config")
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return Config{}, fmt.Errorf("config: reading %q: %w", configFile, err)
			}
		}
	}

	env := configFile
	if env == "" {
		env = "unknown"
	}

	return Config{
		InstanceID:          uuid.New().String(),
		Environment:         env,
		ListenAddr:          v.GetString("listen_addr"),
		DefaultScenario:     v.GetString("default_scenario"),
		DefaultSeed:         uint32(v.GetInt64("default_seed")),
		ControllerDeadline:  time.Duration(v.GetInt64("controller_deadline_ms")) * time.Millisecond,
	}, nil
}
