package typegen

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/teranos/protodts/errors"
	"github.com/teranos/protodts/logger"
	"github.com/teranos/protodts/schema"
)

// Options controls how artifacts are persisted.
type Options struct {
	// FormatCommand runs after each write with the artifact path appended,
	// e.g. "npx prettier --write". Empty disables formatting.
	FormatCommand string
}

// RunResult lists the artifacts written by Run, in pass order.
type RunResult struct {
	Written  []string
	Duration time.Duration
}

// Run executes passes strictly in order and writes each artifact to outDir.
// The first write or format failure aborts the run; artifacts written before
// it are left in place.
func Run(ctx context.Context, domains []schema.Domain, passes []Pass, outDir string, opts Options) (*RunResult, error) {
	start := time.Now()

	formatter, err := parseFormatCommand(opts.FormatCommand)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", outDir)
	}

	result := &RunResult{}
	for _, pass := range passes {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, "generation cancelled")
		}

		content := pass.Emit(domains)
		path := filepath.Join(outDir, pass.FileName())
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return result, errors.Wrapf(err, "failed to write %s", path)
		}
		result.Written = append(result.Written, path)

		logger.Infow("Wrote declarations",
			"pass", pass.Name(),
			"file", path,
			"bytes", len(content))

		if formatter != nil {
			if err := runFormatter(ctx, formatter, path); err != nil {
				return result, err
			}
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

func parseFormatCommand(command string) ([]string, error) {
	if command == "" {
		return nil, nil
	}
	argv, err := shellquote.Split(command)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "failed to parse format command %q", command),
			"check quoting in output.format_command")
	}
	if len(argv) == 0 {
		return nil, nil
	}
	return argv, nil
}

func runFormatter(ctx context.Context, argv []string, path string) error {
	args := append(append([]string{}, argv[1:]...), path)
	cmd := exec.CommandContext(ctx, argv[0], args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.WithDetail(
			errors.Wrapf(err, "failed to format %s with %s", path, argv[0]),
			string(output))
	}
	logger.Debugw("Formatted declarations", "file", path, "formatter", argv[0])
	return nil
}
