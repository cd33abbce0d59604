package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcherReportsRelativePaths(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2.1.colors"), 0o755))
	path := filepath.Join(root, "2.1.colors", "object.frag")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	w, err := New(root, zap.NewNop())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("b"), 0o644))

	select {
	case got := <-w.Changes():
		assert.Equal(t, "2.1.colors/object.frag", got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestDrainDeduplicates(t *testing.T) {
	w := &Watcher{changes: make(chan string, 4)}
	w.changes <- "a.vert"
	w.changes <- "b.frag"
	w.changes <- "a.vert"

	assert.Equal(t, []string{"a.vert", "b.frag"}, w.Drain())
	assert.Empty(t, w.Drain())
}

func TestNewMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), zap.NewNop())
	assert.Error(t, err)
}
