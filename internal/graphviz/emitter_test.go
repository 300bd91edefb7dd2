package graphviz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsagraph/vsa/internal/recorder"
)

func TestEmitter_WriteFile_RejectsSpaces(t *testing.T) {
	e := &Emitter{}
	err := e.WriteFile(filepath.Join(t.TempDir(), "bad path.dot"), recorder.Snapshot{})
	assert.ErrorIs(t, err, ErrPathHasSpaces)
}

func TestEmitter_WriteFile_RejectsWrongExtension(t *testing.T) {
	e := &Emitter{}
	err := e.WriteFile(filepath.Join(t.TempDir(), "out.txt"), recorder.Snapshot{})
	assert.ErrorIs(t, err, ErrWrongExtension)
}

func TestEmitter_WriteFile_CreatesParentDirAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.dot")

	e := &Emitter{}
	require.NoError(t, e.WriteFile(path, recorder.Snapshot{}))

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(first), "digraph vsa_sync_graph")

	require.NoError(t, e.WriteFile(path, recorder.Snapshot{}))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmitter_WriteFile_CallsOnWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.dot")
	var gotPath string
	var gotBytes int
	e := &Emitter{OnWritten: func(p string, n int) {
		gotPath = p
		gotBytes = n
	}}
	require.NoError(t, e.WriteFile(path, recorder.Snapshot{}))
	assert.Equal(t, path, gotPath)
	assert.Positive(t, gotBytes)
}

func TestEmitter_WriteFileTolerant_SwallowsError(t *testing.T) {
	e := &Emitter{}
	assert.NotPanics(t, func() {
		e.WriteFileTolerant(filepath.Join(t.TempDir(), "bad path.dot"), recorder.Snapshot{})
	})
}
