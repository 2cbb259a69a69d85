package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/teranos/protodts/display"
	"github.com/teranos/protodts/typegen"
)

// GenerateCmd writes the declaration artifacts for the configured schema.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate TypeScript declarations from the protocol schema",
	Long: `Generate TypeScript declaration files from one or more protocol schema
documents (JSON or YAML, local or fetched through go-getter).

Three artifacts are written, in order:
  protocol.d.ts          - one namespace with every domain's types, commands and events
  protocol-mapping.d.ts  - event and command signature mapping
  protocol-proxy-api.d.ts - per-domain API interfaces

Examples:
  protodts generate                                   # Use protodts.toml
  protodts generate -s json/browser_protocol.json -s json/js_protocol.json
  protodts generate -o types/ --strict                # Override output, enable strict checks
  protodts generate --json                            # Emit progress as JSON lines`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addSchemaFlags(GenerateCmd)
	addOutputFlag(GenerateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	emitter := display.NewEmitter(display.ShouldOutputJSON(cmd), verbosity)

	cfg, err := loadConfig()
	if err != nil {
		emitter.EmitError("config", err)
		return err
	}

	emitter.EmitStage("load", pluralize(len(cfg.Schema.Sources), "source"))
	s, err := loadSchema(cmd.Context(), cfg)
	if err != nil {
		emitter.EmitError("load", err)
		return err
	}

	outDir := outputDir(cfg)
	emitter.EmitStage("generate", outDir)
	result, err := typegen.Run(cmd.Context(), s.Domains, newGenerator(cfg).Passes(), outDir, runOptions(cfg))
	if result != nil {
		emitArtifacts(emitter, result.Written)
	}
	if err != nil {
		emitter.EmitError("generate", err)
		return err
	}

	emitter.EmitComplete(map[string]interface{}{
		"domains":   len(s.Domains),
		"artifacts": len(result.Written),
		"output":    outDir,
		"duration":  result.Duration.String(),
	})
	return nil
}

func emitArtifacts(emitter display.ProgressEmitter, paths []string) {
	for _, path := range paths {
		size := 0
		if info, err := os.Stat(path); err == nil {
			size = int(info.Size())
		}
		emitter.EmitArtifact(filepath.ToSlash(path), size)
	}
}
