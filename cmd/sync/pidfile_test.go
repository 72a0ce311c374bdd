package sync

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePIDThenReadLivePID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pid")

	require.NoError(t, writePID(path))

	pid, alive := readLivePID(path)
	assert.True(t, alive)
	assert.Equal(t, os.Getpid(), pid)
}

func TestWritePIDRefusesWhenAlreadyRunning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pid")
	require.NoError(t, writePID(path))

	err := writePID(path)
	assert.Error(t, err)
}

func TestReadLivePIDMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pid")

	pid, alive := readLivePID(path)
	assert.False(t, alive)
	assert.Zero(t, pid)
}

func TestReadLivePIDStaleEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stale.pid")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(999999)), 0o644))

	_, alive := readLivePID(path)
	assert.False(t, alive, "pid 999999 should not be a live process")
}

func TestRemovePIDIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pid")
	require.NoError(t, writePID(path))

	require.NoError(t, removePID(path))
	assert.NoError(t, removePID(path))
}
