// Package config loads protodts settings from defaults, protodts.toml and
// PROTODTS_* environment variables using viper.
//
// Precedence (lowest to highest):
//  1. Default values (SetDefaults)
//  2. Project config: the nearest protodts.toml walking up from the working directory
//  3. Explicit config file (--config)
//  4. Environment variables (PROTODTS_OUTPUT_DIR, PROTODTS_SCHEMA_STRICT, ...)
//
// Command-line flags are applied by the CLI on top of the loaded Config.
package config

import "time"

// Config represents the protodts configuration
type Config struct {
	Schema   SchemaConfig   `mapstructure:"schema" toml:"schema" json:"schema" yaml:"schema"`
	Output   OutputConfig   `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" json:"generate" yaml:"generate"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// SchemaConfig configures where the protocol schema comes from
type SchemaConfig struct {
	// Sources are local paths or go-getter URLs, concatenated in order
	Sources []string `mapstructure:"sources" toml:"sources" json:"sources" yaml:"sources"`
	// VersionConstraint is a semver constraint every document version must satisfy (empty = any)
	VersionConstraint string `mapstructure:"version_constraint" toml:"version_constraint" json:"version_constraint" yaml:"version_constraint"`
	// Strict rejects unresolved references and unknown primitive kinds before generating
	Strict bool `mapstructure:"strict" toml:"strict" json:"strict" yaml:"strict"`
	// CacheDir keeps fetched remote documents between runs (empty = temp dir per run)
	CacheDir string `mapstructure:"cache_dir" toml:"cache_dir" json:"cache_dir" yaml:"cache_dir"`
	// FetchTimeout bounds each http(s) fetch, as a Go duration ("30s")
	FetchTimeout string `mapstructure:"fetch_timeout" toml:"fetch_timeout" json:"fetch_timeout" yaml:"fetch_timeout"`
	// BlockPrivateHosts refuses http(s) sources on loopback or private networks
	BlockPrivateHosts bool `mapstructure:"block_private_hosts" toml:"block_private_hosts" json:"block_private_hosts" yaml:"block_private_hosts"`
}

// Timeout parses FetchTimeout; zero when unset.
func (s SchemaConfig) Timeout() (time.Duration, error) {
	if s.FetchTimeout == "" {
		return 0, nil
	}
	return time.ParseDuration(s.FetchTimeout)
}

// OutputConfig configures where declarations are written
type OutputConfig struct {
	Dir          string `mapstructure:"dir" toml:"dir" json:"dir" yaml:"dir"`
	ProtocolFile string `mapstructure:"protocol_file" toml:"protocol_file" json:"protocol_file" yaml:"protocol_file"`
	MappingFile  string `mapstructure:"mapping_file" toml:"mapping_file" json:"mapping_file" yaml:"mapping_file"`
	APIFile      string `mapstructure:"api_file" toml:"api_file" json:"api_file" yaml:"api_file"`
	// FormatCommand runs after each write with the file path appended (empty = none)
	FormatCommand string `mapstructure:"format_command" toml:"format_command" json:"format_command" yaml:"format_command"`
}

// GenerateConfig configures the generated modules
type GenerateConfig struct {
	MappingModule string `mapstructure:"mapping_module" toml:"mapping_module" json:"mapping_module" yaml:"mapping_module"`
	APIModule     string `mapstructure:"api_module" toml:"api_module" json:"api_module" yaml:"api_module"`
	// Annotate emits @experimental and @deprecated JSDoc tags
	Annotate bool `mapstructure:"annotate" toml:"annotate" json:"annotate" yaml:"annotate"`
}

// LogConfig configures the global logger
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
	Level string `mapstructure:"level" toml:"level" json:"level" yaml:"level"`
}
