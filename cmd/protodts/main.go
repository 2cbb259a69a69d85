package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/protodts/cmd/protodts/commands"
	"github.com/teranos/protodts/errors"
	"github.com/teranos/protodts/logger"
)

var rootCmd = &cobra.Command{
	Use:   "protodts",
	Short: "protodts - TypeScript declarations from protocol schemas",
	Long: `protodts - Generate TypeScript declaration files from protocol schemas.

A protocol schema describes domains of types, commands and events (the Chrome
DevTools Protocol is the canonical example). protodts turns one or more schema
documents into a typed namespace, a command/event mapping and per-domain API
interfaces.

Available commands:
  generate - Write the declaration files
  check    - Fail when the declaration files are out of date
  watch    - Regenerate when schema files change
  inspect  - Summarize the schema
  config   - Manage protodts.toml

Examples:
  protodts config init        # Create protodts.toml
  protodts generate           # Generate declarations
  protodts check              # Verify declarations in CI
  protodts inspect --json     # Schema summary as JSON`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return commands.InitLogging()
	},
}

func init() {
	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
