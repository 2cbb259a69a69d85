package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/protodts/display"
	"github.com/teranos/protodts/schema"
)

// InspectCmd summarizes the loaded schema without generating anything.
var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the protocol schema",
	Long: `Load the configured schema and list its documents and domains with
type, command and event counts.

Examples:
  protodts inspect
  protodts inspect -s json/js_protocol.json --json`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	addSchemaFlags(InspectCmd)
}

type documentSummary struct {
	Source  string `json:"source"`
	Version string `json:"version"`
	Domains int    `json:"domains"`
}

type domainSummary struct {
	Name         string   `json:"name"`
	Types        int      `json:"types"`
	Commands     int      `json:"commands"`
	Events       int      `json:"events"`
	Experimental bool     `json:"experimental,omitempty"`
	Deprecated   bool     `json:"deprecated,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

type inspectOutput struct {
	Documents []documentSummary `json:"documents"`
	Domains   []domainSummary   `json:"domains"`
}

func summarize(s *schema.Schema) inspectOutput {
	out := inspectOutput{
		Documents: make([]documentSummary, 0, len(s.Documents)),
		Domains:   make([]domainSummary, 0, len(s.Domains)),
	}
	for _, doc := range s.Documents {
		out.Documents = append(out.Documents, documentSummary{
			Source:  doc.Source,
			Version: doc.Version.String(),
			Domains: len(doc.Domains),
		})
	}
	for _, d := range s.Domains {
		out.Domains = append(out.Domains, domainSummary{
			Name:         d.Name,
			Types:        len(d.Types),
			Commands:     len(d.Commands),
			Events:       len(d.Events),
			Experimental: d.Experimental,
			Deprecated:   d.Deprecated,
			Dependencies: d.Dependencies,
		})
	}
	return out
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := loadSchema(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := summarize(s)
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), out)
	}

	docs := pterm.TableData{{"Source", "Version", "Domains"}}
	for _, d := range out.Documents {
		version := d.Version
		if version == "" {
			version = "-"
		}
		docs = append(docs, []string{d.Source, version, fmt.Sprint(d.Domains)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(docs).Render(); err != nil {
		return err
	}

	domains := pterm.TableData{{"Domain", "Types", "Commands", "Events", "Status"}}
	var types, commands, events int
	for _, d := range out.Domains {
		domains = append(domains, []string{
			d.Name,
			fmt.Sprint(d.Types),
			fmt.Sprint(d.Commands),
			fmt.Sprint(d.Events),
			domainStatus(d),
		})
		types += d.Types
		commands += d.Commands
		events += d.Events
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(domains).Render(); err != nil {
		return err
	}

	pterm.Info.Printfln("%s, %s, %s, %s",
		pluralize(len(out.Domains), "domain"),
		pluralize(types, "type"),
		pluralize(commands, "command"),
		pluralize(events, "event"))
	return nil
}

func domainStatus(d domainSummary) string {
	switch {
	case d.Deprecated:
		return pterm.Yellow("deprecated")
	case d.Experimental:
		return pterm.Cyan("experimental")
	default:
		return ""
	}
}
