package leveldata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLevelFile(t *testing.T) {
	assert.True(t, IsLevelFile("levels/droid_room.tmx"))
	assert.True(t, IsLevelFile("ROOM.TMX"))
	assert.False(t, IsLevelFile("levels/tiles.tsx"))
	assert.False(t, IsLevelFile("levels"))
}

func TestWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	level := filepath.Join(dir, "room.tmx")
	require.NoError(t, os.WriteFile(level, []byte("<map/>"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, level, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the level file")
	}
}

func TestWatcherReportsAfterLastWrite(t *testing.T) {
	const debounce = 300 * time.Millisecond
	dir := t.TempDir()
	w, err := NewWatcher(dir, debounce)
	require.NoError(t, err)
	defer w.Close()

	level := filepath.Join(dir, "room.tmx")
	require.NoError(t, os.WriteFile(level, []byte("<map"), 0o644))
	time.Sleep(debounce / 3)
	lastWrite := time.Now()
	require.NoError(t, os.WriteFile(level, []byte("<map/>"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, level, name)
		assert.GreaterOrEqual(t, time.Since(lastWrite), debounce, "reported before the file went quiet")
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the level file")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("second event for %s", name)
	case <-time.After(2 * debounce):
	}
}

func TestWatcherCloseEndsChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second close is a no-op")

	select {
	case _, ok := <-w.Events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events channel left open")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), time.Millisecond)
	assert.Error(t, err)
}
