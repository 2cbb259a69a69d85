package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/protodts/config"
	"github.com/teranos/protodts/errors"
)

// ConfigCmd manages protodts.toml
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage protodts configuration",
	Long: `Create, display and validate protodts configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (PROTODTS_* prefix, e.g. PROTODTS_OUTPUT_DIR)
3. Explicit config (--config)
4. Project config (nearest protodts.toml, searching upwards)
5. Default values

Examples:
  protodts config init                  # Write ./protodts.toml
  protodts config show --format json    # Show effective configuration
  protodts config validate              # Validate current configuration
  protodts config where                 # Show which files are read`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter protodts.toml",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long:  "Display the configuration after merging all sources",
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Long: `List every configuration file considered, in merge order, and whether
it exists.`,
	RunE: runConfigWhere,
}

var (
	configFormat string
	configForce  bool
)

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file (keeps a backup)")
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configWhereCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.FileName
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.WriteDefault(path, configForce); err != nil {
		return err
	}
	pterm.Success.Printfln("Wrote %s", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	data, err := config.Marshal(cfg, configFormat)
	if err != nil {
		return err
	}
	if configFormat != "json" {
		fmt.Fprintln(cmd.OutOrStdout(), "# protodts configuration")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	pterm.Success.Println("Configuration is valid")
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	sources := config.Sources(configPath)

	data := pterm.TableData{{"#", "Kind", "Path", "Status"}}
	for i, src := range sources {
		status := pterm.Gray("missing")
		if src.Exists {
			status = pterm.Green("loaded")
		}
		data = append(data, []string{fmt.Sprint(i + 1), src.Kind, src.Path, status})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("Environment overrides use the %s_ prefix and take precedence over files", config.EnvPrefix)
	return nil
}
