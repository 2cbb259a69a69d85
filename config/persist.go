package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/teranos/protodts/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = "# protodts configuration\n# Environment variables (PROTODTS_OUTPUT_DIR, ...) override these values.\n\n"

// WriteDefault writes a starter protodts.toml. An existing file is only
// replaced when force is set, after rotating it into .back1/.back2/.back3.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return errors.WithHint(
				errors.Newf("%s already exists", path),
				"pass --force to overwrite it (a backup is kept)")
		}
		if err := createBackup(path); err != nil {
			return errors.Wrap(err, "failed to create backup")
		}
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		return errors.Wrap(err, "failed to encode default config")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// createBackup rotates backups (.back1, .back2, .back3) before overwriting
func createBackup(configPath string) error {
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete old backup %s", back3)
	}
	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}
	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(back1, content, 0644); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}

// Marshal renders c as toml, json or yaml for display.
func Marshal(c *Config, format string) ([]byte, error) {
	switch format {
	case "toml", "":
		data, err := gotoml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to TOML")
		}
		return data, nil
	case "json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to JSON")
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to YAML")
		}
		return data, nil
	default:
		return nil, errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
}
