package config

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/teranos/protodts/errors"
	"go.uber.org/zap/zapcore"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if len(c.Schema.Sources) == 0 {
		return errors.WithHint(
			errors.NewInvalidConfigError("schema.sources cannot be empty"),
			"list at least one schema document, e.g. json/browser_protocol.json")
	}
	for i, src := range c.Schema.Sources {
		if strings.TrimSpace(src) == "" {
			return errors.NewInvalidConfigError("schema.sources[%d] is empty", i)
		}
	}

	if c.Schema.VersionConstraint != "" {
		if _, err := semver.NewConstraint(c.Schema.VersionConstraint); err != nil {
			return errors.WithDetail(
				errors.NewInvalidConfigError("schema.version_constraint %q is not a semver constraint", c.Schema.VersionConstraint),
				err.Error())
		}
	}

	if d, err := c.Schema.Timeout(); err != nil || d < 0 {
		return errors.WithHint(
			errors.NewInvalidConfigError("schema.fetch_timeout %q is not a duration", c.Schema.FetchTimeout),
			"use a Go duration such as 30s or 2m")
	}

	if c.Output.Dir == "" {
		return errors.NewInvalidConfigError("output.dir cannot be empty")
	}

	files := map[string]string{}
	for _, f := range []struct{ key, value string }{
		{"output.protocol_file", c.Output.ProtocolFile},
		{"output.mapping_file", c.Output.MappingFile},
		{"output.api_file", c.Output.APIFile},
	} {
		if f.value == "" {
			return errors.NewInvalidConfigError("%s cannot be empty", f.key)
		}
		if strings.ContainsAny(f.value, `/\`) {
			return errors.NewInvalidConfigError("%s must be a file name, got %q", f.key, f.value)
		}
		if other, dup := files[f.value]; dup {
			return errors.NewInvalidConfigError("%s and %s both write %s", other, f.key, f.value)
		}
		files[f.value] = f.key
	}

	for _, m := range []struct{ key, value string }{
		{"generate.mapping_module", c.Generate.MappingModule},
		{"generate.api_module", c.Generate.APIModule},
	} {
		if !identifierPattern.MatchString(m.value) {
			return errors.NewInvalidConfigError("%s must be a TypeScript identifier, got %q", m.key, m.value)
		}
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.WithHint(
			errors.NewInvalidConfigError("log.level %q is not a log level", c.Log.Level),
			"use one of debug, info, warn, error")
	}

	return nil
}
