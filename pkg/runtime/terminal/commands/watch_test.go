package commands

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "hierarchy.csv")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(target, []byte("id,name\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- WatchFiles(ctx, []string{target}, 20*time.Millisecond, func() { calls.Add(1) })
	}()

	// The watcher registers asynchronously, so keep touching the file until a run fires.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(other, []byte("ignored"), 0o600)
		_ = os.WriteFile(target, []byte("id,name\nGC,Global Corp\n"), 0o600)
		return calls.Load() > 0
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchFiles_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone", "hierarchy.csv")

	err := WatchFiles(context.Background(), []string{missing}, 0, func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
