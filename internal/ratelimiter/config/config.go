// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config resolves the server's process configuration from CLI flags
// and THROTTLECRAB_-prefixed environment variables. Flags beat environment
// variables beat defaults.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// StoreType selects the expiry-reclamation strategy.
type StoreType string

const (
	StorePeriodic      StoreType = "periodic"
	StoreProbabilistic StoreType = "probabilistic"
	StoreAdaptive      StoreType = "adaptive"
)

// EnvPrefix is the prefix of every environment variable the server reads.
const EnvPrefix = "THROTTLECRAB"

// TransportConfig is one listener's enable flag and bind address.
type TransportConfig struct {
	Enabled bool
	Host    string
	Port    int
}

// StoreConfig carries the store selection and its strategy-specific knobs.
// Interval knobs are whole seconds, mirroring the flag surface.
type StoreConfig struct {
	Type     StoreType
	Capacity int

	CleanupIntervalSecs int // periodic

	CleanupProbability uint64 // probabilistic (1 in N)

	MinIntervalSecs int // adaptive
	MaxIntervalSecs int // adaptive
	MaxOperations   int // adaptive
}

// Config is the resolved process configuration.
type Config struct {
	Native  TransportConfig
	HTTP    TransportConfig
	GRPC    TransportConfig
	Redis   TransportConfig
	Metrics TransportConfig

	Store      StoreConfig
	QueueDepth int
	LogLevel   string

	// ListEnvVars makes the process print the environment variable table
	// and exit successfully.
	ListEnvVars bool
}

// Load parses args (not including the program name) and the environment.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("throttlecrab-server", pflag.ContinueOnError)

	fs.Bool("native", false, "Enable the native binary transport")
	fs.String("native-host", "127.0.0.1", "Native transport host")
	fs.Int("native-port", 8072, "Native transport port")

	fs.Bool("http", false, "Enable the HTTP transport")
	fs.String("http-host", "127.0.0.1", "HTTP transport host")
	fs.Int("http-port", 8080, "HTTP transport port")

	fs.Bool("grpc", false, "Enable the gRPC transport")
	fs.String("grpc-host", "127.0.0.1", "gRPC transport host")
	fs.Int("grpc-port", 8070, "gRPC transport port")

	fs.Bool("redis", false, "Enable the Redis (RESP) transport")
	fs.String("redis-host", "127.0.0.1", "Redis transport host")
	fs.Int("redis-port", 6379, "Redis transport port")

	fs.Bool("metrics", false, "Enable the Prometheus metrics endpoint")
	fs.String("metrics-host", "127.0.0.1", "Metrics endpoint host")
	fs.Int("metrics-port", 9090, "Metrics endpoint port")

	fs.String("store", string(StorePeriodic), "Store type: periodic, probabilistic, adaptive")
	fs.Int("store-capacity", 100_000, "Expected number of tracked keys")
	fs.Int("store-cleanup-interval", 60, "Cleanup interval for the periodic store (seconds)")
	fs.Uint64("store-cleanup-probability", 1000, "Cleanup probability for the probabilistic store (1 in N)")
	fs.Int("store-min-interval", 5, "Minimum cleanup interval for the adaptive store (seconds)")
	fs.Int("store-max-interval", 300, "Maximum cleanup interval for the adaptive store (seconds)")
	fs.Int("store-max-operations", 100_000, "Operations between forced cleanups for the adaptive store")

	fs.Int("queue-depth", 100_000, "Owner queue depth")
	fs.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	fs.Bool("list-env-vars", false, "List all environment variables and exit")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Native: TransportConfig{
			Enabled: v.GetBool("native"),
			Host:    v.GetString("native-host"),
			Port:    v.GetInt("native-port"),
		},
		HTTP: TransportConfig{
			Enabled: v.GetBool("http"),
			Host:    v.GetString("http-host"),
			Port:    v.GetInt("http-port"),
		},
		GRPC: TransportConfig{
			Enabled: v.GetBool("grpc"),
			Host:    v.GetString("grpc-host"),
			Port:    v.GetInt("grpc-port"),
		},
		Redis: TransportConfig{
			Enabled: v.GetBool("redis"),
			Host:    v.GetString("redis-host"),
			Port:    v.GetInt("redis-port"),
		},
		Metrics: TransportConfig{
			Enabled: v.GetBool("metrics"),
			Host:    v.GetString("metrics-host"),
			Port:    v.GetInt("metrics-port"),
		},
		Store: StoreConfig{
			Type:                StoreType(strings.ToLower(v.GetString("store"))),
			Capacity:            v.GetInt("store-capacity"),
			CleanupIntervalSecs: v.GetInt("store-cleanup-interval"),
			CleanupProbability:  v.GetUint64("store-cleanup-probability"),
			MinIntervalSecs:     v.GetInt("store-min-interval"),
			MaxIntervalSecs:     v.GetInt("store-max-interval"),
			MaxOperations:       v.GetInt("store-max-operations"),
		},
		QueueDepth:  v.GetInt("queue-depth"),
		LogLevel:    v.GetString("log-level"),
		ListEnvVars: v.GetBool("list-env-vars"),
	}

	if cfg.ListEnvVars {
		return cfg, nil
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Store.Type {
	case StorePeriodic, StoreProbabilistic, StoreAdaptive:
	default:
		return fmt.Errorf("invalid store type %q: valid options are periodic, probabilistic, adaptive", c.Store.Type)
	}

	if !c.Native.Enabled && !c.HTTP.Enabled && !c.GRPC.Enabled && !c.Redis.Enabled {
		return fmt.Errorf("at least one transport must be enabled (--native, --http, --grpc, or --redis)")
	}
	return nil
}

// EnvVarHelp renders the table printed by --list-env-vars.
func EnvVarHelp() string {
	flags := []string{
		"native", "native-host", "native-port",
		"http", "http-host", "http-port",
		"grpc", "grpc-host", "grpc-port",
		"redis", "redis-host", "redis-port",
		"metrics", "metrics-host", "metrics-port",
		"store", "store-capacity", "store-cleanup-interval",
		"store-cleanup-probability", "store-min-interval",
		"store-max-interval", "store-max-operations",
		"queue-depth", "log-level",
	}
	sort.Strings(flags)

	var b strings.Builder
	b.WriteString("Environment variables (CLI flags take precedence):\n")
	for _, f := range flags {
		fmt.Fprintf(&b, "  %s_%s\n", EnvPrefix, strings.ToUpper(strings.ReplaceAll(f, "-", "_")))
	}
	return b.String()
}
