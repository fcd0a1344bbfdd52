package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestWatcher(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	filename := filepath.Join(dir, "a.css")
	require.NoError(t, os.WriteFile(filename, []byte("a{color:red}"), 0644))

	w, err := NewWatcher(false, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, w.AddPath(filename))
	changes := w.Run()

	require.NoError(t, os.WriteFile(filename, []byte("a{color:blue}"), 0644))
	select {
	case file := <-changes:
		assert.Equal(t, filename, file)
	case <-time.After(5 * time.Second):
		t.Error("write was not reported")
	}

	require.NoError(t, w.Close())
	for range changes {
	}
}

func TestWatcherPaths(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	w, err := NewWatcher(true, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.AddPath(sub))

	assert.True(t, w.watched(filepath.Join(sub, "a.css")))
	assert.True(t, w.watched(filepath.Join(sub, "deep", "a.css")))
	assert.False(t, w.watched(filepath.Join(dir, "a.css")))
	assert.False(t, w.watched(sub+"2"+string(filepath.Separator)+"a.css"))

	w.IgnoreNext(filepath.Join(sub, ".", "a.css"))
	assert.True(t, w.ignored(filepath.Join(sub, "a.css")))
	assert.False(t, w.ignored(filepath.Join(sub, "a.css")), "only the next event is ignored")
	w.IgnoreNext("")
	assert.False(t, w.ignored(""))
}
