// Package commands implements the protodts cobra commands.
package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/teranos/protodts/config"
	"github.com/teranos/protodts/errors"
	"github.com/teranos/protodts/internal/httpclient"
	"github.com/teranos/protodts/logger"
	"github.com/teranos/protodts/schema"
	"github.com/teranos/protodts/typegen"
	"github.com/teranos/protodts/typegen/typescript"
)

// Global flags, bound by AddGlobalFlags
var (
	configPath string
	verbosity  int
	jsonOutput bool
)

// Schema and output flags shared by generate, check, watch and inspect
var (
	sourceFlags []string
	outputFlag  string
	strictFlag  bool
)

// AddGlobalFlags registers the persistent flags every command reads.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: nearest protodts.toml)")
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Machine-readable JSON output")
}

// InitLogging sets up the global logger from the -v count. Configuration
// may raise the level later when no -v was given.
func InitLogging() error {
	if err := logger.Initialize(jsonOutput, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	return nil
}

func addSchemaFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&sourceFlags, "source", "s", nil, "Schema source (path or go-getter URL); repeatable, replaces schema.sources")
	cmd.Flags().BoolVar(&strictFlag, "strict", false, "Reject unresolved references and unknown kinds")
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory (overrides output.dir)")
}

// loadConfig loads configuration, applies command-line overrides and validates.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	if len(sourceFlags) > 0 {
		cfg.Schema.Sources = sourceFlags
	}
	if outputFlag != "" {
		cfg.Output.Dir = outputFlag
	}
	if strictFlag {
		cfg.Schema.Strict = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if verbosity == 0 && (cfg.Log.Level != config.DefaultLogLevel || cfg.Log.JSON) {
		if err := logger.InitializeWithLevel(jsonOutput || cfg.Log.JSON, cfg.Log.Level); err != nil {
			return nil, errors.Wrap(err, "failed to initialize logger")
		}
	}
	return cfg, nil
}

// baseDir is the directory relative schema sources and output.dir resolve
// against: the directory of the config file in use, so a project behaves the
// same from any subdirectory. Empty means the working directory.
func baseDir() string {
	dir := ""
	for _, src := range config.Sources(configPath) {
		if !src.Exists {
			continue
		}
		// later sources take precedence
		if abs, err := filepath.Abs(filepath.Dir(src.Path)); err == nil {
			dir = abs
		}
	}
	return dir
}

// outputDir resolves output.dir; --output is taken relative to the working directory.
func outputDir(cfg *config.Config) string {
	dir := cfg.Output.Dir
	if outputFlag != "" || filepath.IsAbs(dir) {
		return dir
	}
	if base := baseDir(); base != "" {
		return filepath.Join(base, dir)
	}
	return dir
}

// sourcePwd is where relative schema sources resolve; --source is taken
// relative to the working directory.
func sourcePwd() string {
	if len(sourceFlags) > 0 {
		return ""
	}
	return baseDir()
}

// loadSchema loads every configured source and applies version and strict checks.
func loadSchema(ctx context.Context, cfg *config.Config) (*schema.Schema, error) {
	timeout, err := cfg.Schema.Timeout()
	if err != nil {
		return nil, errors.Wrap(err, "invalid schema.fetch_timeout")
	}

	s, err := schema.Load(ctx, cfg.Schema.Sources, schema.LoadOptions{
		Pwd:      sourcePwd(),
		CacheDir: cfg.Schema.CacheDir,
		HTTPClient: httpclient.New(httpclient.Options{
			Timeout:      timeout,
			BlockPrivate: cfg.Schema.BlockPrivateHosts,
		}),
	})
	if err != nil {
		return nil, err
	}

	if err := s.CheckVersion(cfg.Schema.VersionConstraint); err != nil {
		return nil, err
	}

	if cfg.Schema.Strict {
		if err := schema.Validate(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// watchPaths lists the local schema files a watch session reacts to.
func watchPaths(cfg *config.Config) []string {
	return schema.LocalPaths(cfg.Schema.Sources, sourcePwd())
}

func newGenerator(cfg *config.Config) *typescript.Generator {
	return typescript.NewGenerator(typescript.Options{
		ProtocolFile:  cfg.Output.ProtocolFile,
		MappingFile:   cfg.Output.MappingFile,
		APIFile:       cfg.Output.APIFile,
		MappingModule: cfg.Generate.MappingModule,
		APIModule:     cfg.Generate.APIModule,
		Annotate:      cfg.Generate.Annotate,
	})
}

func runOptions(cfg *config.Config) typegen.Options {
	return typegen.Options{FormatCommand: cfg.Output.FormatCommand}
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
