package typegen

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/protodts/errors"
	"github.com/teranos/protodts/schema"
)

// CheckResult holds the result of comparing a fresh generation with the
// artifacts on disk.
type CheckResult struct {
	UpToDate bool
	// Stale lists artifacts whose content differs
	Stale []string
	// Missing lists artifacts that do not exist in the existing directory
	Missing []string
}

// Err returns nil when everything is up to date, otherwise an ErrOutOfDate
// error carrying the offending files as details.
func (r *CheckResult) Err() error {
	if r.UpToDate {
		return nil
	}
	err := errors.Wrapf(errors.ErrOutOfDate, "%d artifact(s) differ", len(r.Stale)+len(r.Missing))
	for _, f := range r.Stale {
		err = errors.WithDetailf(err, "stale: %s", f)
	}
	for _, f := range r.Missing {
		err = errors.WithDetailf(err, "missing: %s", f)
	}
	return errors.WithHint(err, "run 'protodts generate' to update")
}

// Check generates into a temporary directory (format command included, so
// formatted artifacts compare equal) and compares the result with outDir.
func Check(ctx context.Context, domains []schema.Domain, passes []Pass, outDir string, opts Options) (*CheckResult, error) {
	tempDir, err := os.MkdirTemp("", "protodts-check-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	if _, err := Run(ctx, domains, passes, tempDir, opts); err != nil {
		return nil, errors.Wrap(err, "failed to generate declarations for comparison")
	}

	return CompareDirectories(tempDir, outDir)
}

// CompareDirectories compares every file under generatedDir with the file at
// the same relative path under existingDir. Files only present in
// existingDir are ignored.
func CompareDirectories(generatedDir, existingDir string) (*CheckResult, error) {
	result := &CheckResult{}

	err := filepath.WalkDir(generatedDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel, err := filepath.Rel(generatedDir, path)
		if err != nil {
			return err
		}

		different, err := filesAreDifferent(path, filepath.Join(existingDir, rel))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			result.Missing = append(result.Missing, rel)
		case err != nil:
			return err
		case different:
			result.Stale = append(result.Stale, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compare %s with %s", generatedDir, existingDir)
	}

	sort.Strings(result.Stale)
	sort.Strings(result.Missing)
	result.UpToDate = len(result.Stale) == 0 && len(result.Missing) == 0
	return result, nil
}

// filesAreDifferent compares two files byte for byte, treating CRLF and LF
// line endings as equal so checkouts with autocrlf still pass.
func filesAreDifferent(generated, existing string) (bool, error) {
	want, err := os.ReadFile(generated)
	if err != nil {
		return false, err
	}
	got, err := os.ReadFile(existing)
	if err != nil {
		return false, err
	}
	return !bytes.Equal(normalizeNewlines(want), normalizeNewlines(got)), nil
}

func normalizeNewlines(b []byte) []byte {
	return []byte(strings.ReplaceAll(string(b), "\r\n", "\n"))
}
