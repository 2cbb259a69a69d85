package typegen

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pdtest "github.com/teranos/protodts/internal/testing"
)

func TestNewWatcherRequiresFiles(t *testing.T) {
	_, err := NewWatcher(nil, func(context.Context) error { return nil })
	assert.Error(t, err)
}

func TestWatcherRelevant(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "browser_protocol.json")
	pdtest.WriteFile(t, source, "{}")

	w, err := NewWatcher([]string{source}, func(context.Context) error { return nil })
	require.NoError(t, err)
	defer w.Close()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "write to source", event: fsnotify.Event{Name: source, Op: fsnotify.Write}, want: true},
		{name: "rename over source", event: fsnotify.Event{Name: source, Op: fsnotify.Rename}, want: true},
		{name: "chmod only", event: fsnotify.Event{Name: source, Op: fsnotify.Chmod}, want: false},
		{name: "sibling file", event: fsnotify.Event{Name: filepath.Join(dir, "protocol.d.ts"), Op: fsnotify.Write}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}

func TestWatcherRegeneratesOnChange(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "js_protocol.json")
	pdtest.WriteFile(t, source, `{"domains": []}`)

	calls := make(chan struct{}, 8)
	w, err := NewWatcher([]string{source}, func(context.Context) error {
		calls <- struct{}{}
		return nil
	})
	require.NoError(t, err)
	defer w.Close()
	w.SetDebounce(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(source, []byte(`{"domains": [{"domain": "Page"}]}`), 0644))

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("regeneration was not triggered")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
