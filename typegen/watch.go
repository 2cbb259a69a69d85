package typegen

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/teranos/protodts/errors"
	"github.com/teranos/protodts/logger"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 300 * time.Millisecond

// RegenerateFunc reloads the schema and reruns the full generation.
type RegenerateFunc func(ctx context.Context) error

// Watcher reruns generation whenever one of a fixed set of schema files
// changes. Every change triggers a complete regeneration; there is no
// incremental mode.
type Watcher struct {
	watcher    *fsnotify.Watcher
	files      map[string]bool
	regenerate RegenerateFunc
	debounce   time.Duration
}

// NewWatcher watches files. Their parent directories are watched rather than
// the files themselves, since editors commonly save by renaming a temp file
// over the original.
func NewWatcher(files []string, regenerate RegenerateFunc) (*Watcher, error) {
	if len(files) == 0 {
		return nil, errors.WithHint(
			errors.New("no local schema files to watch"),
			"watch mode only follows local sources; remote sources are fetched once")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		watcher:    fw,
		files:      make(map[string]bool, len(files)),
		regenerate: regenerate,
		debounce:   DefaultDebounce,
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", f)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}

	return w, nil
}

// SetDebounce overrides DefaultDebounce.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run blocks until ctx is done. Regeneration errors are logged and watching
// continues, so a half-saved schema does not end the session.
func (w *Watcher) Run(ctx context.Context) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debugw("Schema change detected",
				"file", event.Name,
				"op", event.Op.String())
			timer.Reset(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.regenerate(ctx); err != nil {
				logger.Errorw("Regeneration failed", "error", err)
				continue
			}
			logger.Infow("Regenerated declarations")

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("Schema watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}
