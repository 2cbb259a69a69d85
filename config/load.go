package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/teranos/protodts/errors"
)

const (
	// FileName is the project config file searched for by walking up
	FileName = "protodts.toml"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "PROTODTS"
)

// Source is one config file considered while loading.
type Source struct {
	Path   string
	Kind   string // "project" or "explicit"
	Exists bool
}

// Load reads configuration for the current working directory. explicitPath
// (the --config flag) is optional but must exist when given.
func Load(explicitPath string) (*Config, error) {
	v, err := NewViper(explicitPath)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals configuration from a prepared viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads defaults plus one specific file, without env overrides
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	return LoadWithViper(v)
}

// NewViper builds a viper instance with defaults, env binding and config
// files merged in precedence order.
func NewViper(explicitPath string) (*viper.Viper, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return newViper(cwd, explicitPath)
}

func newViper(cwd, explicitPath string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	for _, src := range sources(cwd, explicitPath) {
		if !src.Exists {
			if src.Kind == "explicit" {
				return nil, errors.WithHint(
					errors.NewInvalidConfigError("config file %s does not exist", src.Path),
					"run 'protodts config init' to create one")
			}
			continue
		}
		// MergeInConfig keeps env overrides above file values
		v.SetConfigFile(src.Path)
		v.SetConfigType("toml")
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", src.Path)
		}
	}

	return v, nil
}

// Sources lists the config files Load would consider, in merge order.
func Sources(explicitPath string) []Source {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return sources(cwd, explicitPath)
}

func sources(cwd, explicitPath string) []Source {
	var out []Source
	if project := FindProjectConfig(cwd); project != "" {
		out = append(out, Source{Path: project, Kind: "project", Exists: true})
	} else {
		out = append(out, Source{Path: filepath.Join(cwd, FileName), Kind: "project"})
	}
	if explicitPath != "" {
		_, err := os.Stat(explicitPath)
		out = append(out, Source{Path: explicitPath, Kind: "explicit", Exists: err == nil})
	}
	return out
}

// FindProjectConfig searches for protodts.toml by walking up from dir.
// Returns the path to the first file found, or empty string if none found.
func FindProjectConfig(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return ""
}
