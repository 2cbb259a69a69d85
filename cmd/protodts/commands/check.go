package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/protodts/display"
	"github.com/teranos/protodts/typegen"
)

// CheckCmd fails when the artifacts on disk differ from a fresh generation.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify generated declarations are up to date",
	Long: `Generate into a temporary directory and compare with the output directory.

Exits non-zero and lists stale or missing artifacts when they differ.
Intended for CI, next to 'protodts generate'.

Examples:
  protodts check
  protodts check --json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	addSchemaFlags(CheckCmd)
	addOutputFlag(CheckCmd)
}

type checkOutput struct {
	UpToDate bool     `json:"up_to_date"`
	Output   string   `json:"output"`
	Stale    []string `json:"stale"`
	Missing  []string `json:"missing"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := loadSchema(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	outDir := outputDir(cfg)
	result, err := typegen.Check(cmd.Context(), s.Domains, newGenerator(cfg).Passes(), outDir, runOptions(cfg))
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		out := checkOutput{
			UpToDate: result.UpToDate,
			Output:   outDir,
			Stale:    nonNil(result.Stale),
			Missing:  nonNil(result.Missing),
		}
		if err := display.OutputJSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
		return result.Err()
	}

	if result.UpToDate {
		pterm.Success.Printfln("Declarations in %s are up to date", outDir)
		return nil
	}
	for _, f := range result.Stale {
		pterm.Warning.Printfln("stale: %s", f)
	}
	for _, f := range result.Missing {
		pterm.Warning.Printfln("missing: %s", f)
	}
	return result.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
