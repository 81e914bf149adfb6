// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads HoloAuth settings from defaults, an optional YAML
// file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/holomush/holoauth/internal/logging"
	"github.com/holomush/holoauth/internal/xdg"
)

// Flag names. Dashes in a flag name map to dots in the config key,
// so --log-format sets log.format.
const (
	FlagConfig      = "config"
	FlagLogFormat   = "log-format"
	FlagLogLevel    = "log-level"
	FlagMetricsAddr = "metrics-addr"
	FlagPrompt      = "prompt"
)

// Defaults.
const (
	DefaultLogFormat = logging.FormatJSON
	DefaultLogLevel  = "info"
	DefaultPrompt    = "> "
)

// Config holds all runtime settings.
type Config struct {
	Log     LogConfig     `koanf:"log" json:"log,omitempty"`
	Metrics MetricsConfig `koanf:"metrics" json:"metrics,omitempty"`
	Shell   ShellConfig   `koanf:"shell" json:"shell,omitempty"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Format string `koanf:"format" json:"format,omitempty" jsonschema:"enum=json,enum=text,description=Log output format"`
	Level  string `koanf:"level" json:"level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,description=Minimum log level"`
}

// MetricsConfig controls the observability server.
type MetricsConfig struct {
	// Addr is the listen address for /metrics and health probes.
	// Empty disables the server.
	Addr string `koanf:"addr" json:"addr,omitempty" jsonschema:"description=host:port for /metrics and health probes; empty disables"`
}

// ShellConfig controls the interactive shell.
type ShellConfig struct {
	Prompt string `koanf:"prompt" json:"prompt,omitempty" jsonschema:"description=Prompt written before each shell line"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	FlagLogFormat:   "log.format",
	FlagLogLevel:    "log.level",
	FlagMetricsAddr: "metrics.addr",
	FlagPrompt:      "shell.prompt",
}

// RegisterFlags adds the config flags, with their defaults, to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagConfig, "", "path to config file (default $XDG_CONFIG_HOME/holoauth/config.yaml)")
	flags.String(FlagLogFormat, DefaultLogFormat, "log format (json, text)")
	flags.String(FlagLogLevel, DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String(FlagMetricsAddr, "", "observability server address, e.g. 127.0.0.1:9100 (empty disables)")
	flags.String(FlagPrompt, DefaultPrompt, "shell prompt")
}

// Load builds a Config from the flags registered by RegisterFlags.
//
// An explicit --config path must exist. Without one, the XDG default is
// read only if present.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	path, explicit, err := configPath(flags)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadFile(k, path, explicit); err != nil {
			return nil, err
		}
	}

	// Unchanged flags only fill keys the file left unset.
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("source", "flags").Wrap(err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configPath(flags *pflag.FlagSet) (path string, explicit bool, err error) {
	if f := flags.Lookup(FlagConfig); f != nil && f.Value.String() != "" {
		return f.Value.String(), true, nil
	}
	path, err = xdg.ConfigFile()
	if err != nil {
		// No home directory means no default file; flags still apply.
		return "", false, nil //nolint:nilerr // absence of a default file is not an error
	}
	return path, false, nil
}

func loadFile(k *koanf.Koanf, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
	}
	if err := ValidateYAML(data); err != nil {
		return oops.With("path", path).Wrap(err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
	}
	return nil
}

// Validate reports settings that cannot be applied.
func (c *Config) Validate() error {
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return oops.With("key", "log.format").Wrap(err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return oops.With("key", "log.level").Wrap(err)
	}
	if c.Metrics.Addr != "" && !strings.Contains(c.Metrics.Addr, ":") {
		return oops.Code("CONFIG_INVALID").
			With("key", "metrics.addr").
			Errorf("metrics address %q must be host:port", c.Metrics.Addr)
	}
	return nil
}

// LoggingOptions converts the log settings for logging.Setup.
// Call only on a validated Config.
func (c *Config) LoggingOptions(service, version string) logging.Options {
	format, _ := logging.ParseFormat(c.Log.Format) //nolint:errcheck // validated
	level, _ := logging.ParseLevel(c.Log.Level)    //nolint:errcheck // validated
	return logging.Options{
		Service: service,
		Version: version,
		Format:  format,
		Level:   level,
	}
}
