package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/teranos/protodts/display"
	"github.com/teranos/protodts/errors"
	"github.com/teranos/protodts/logger"
	"github.com/teranos/protodts/typegen"
)

var watchDebounce = typegen.DefaultDebounce

// WatchCmd regenerates whenever a local schema document changes.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate declarations when schema files change",
	Long: `Generate once, then watch every local schema source and regenerate on change.

Remote sources are fetched on each regeneration but not watched.
Stop with Ctrl+C.

Examples:
  protodts watch
  protodts watch --debounce 1s`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	addSchemaFlags(WatchCmd)
	addOutputFlag(WatchCmd)
	WatchCmd.Flags().DurationVar(&watchDebounce, "debounce", typegen.DefaultDebounce, "Quiet period before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	paths := watchPaths(cfg)
	if len(paths) == 0 {
		return errors.WithHint(
			errors.New("no local schema sources to watch"),
			"watch only reacts to files on disk; use 'protodts generate' for remote sources")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	emitter := display.NewEmitter(display.ShouldOutputJSON(cmd), verbosity)
	passes := newGenerator(cfg).Passes()
	outDir := outputDir(cfg)

	regenerate := func(ctx context.Context) error {
		s, err := loadSchema(ctx, cfg)
		if err != nil {
			emitter.EmitError("load", err)
			return err
		}
		result, err := typegen.Run(ctx, s.Domains, passes, outDir, runOptions(cfg))
		if result != nil {
			emitArtifacts(emitter, result.Written)
		}
		if err != nil {
			emitter.EmitError("generate", err)
			return err
		}
		return nil
	}

	// A broken schema at startup is reported but does not stop the session
	if err := regenerate(ctx); err != nil {
		logger.Warnw("Initial generation failed", "error", err)
	}

	w, err := typegen.NewWatcher(paths, regenerate)
	if err != nil {
		return err
	}
	defer w.Close()
	w.SetDebounce(watchDebounce)

	emitter.EmitInfo("Watching " + pluralize(len(paths), "schema file") + " (Ctrl+C to stop)")
	return w.Run(ctx)
}
