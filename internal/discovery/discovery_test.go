package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestList_FindsOnlyDotLogFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.log"), []byte("x"), 0o644))

	files, err := List(DefaultWalker, dir, zap.NewNop())
	require.NoError(t, err)

	sort.Strings(files)
	assert.Len(t, files, 2)
	assert.Contains(t, files[0], "a.log")
	assert.Contains(t, files[1], "c.log")
}

func TestList_EmptyDirReturnsNoFiles(t *testing.T) {
	dir := t.TempDir()
	files, err := List(DefaultWalker, dir, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestList_NonExistentRootIsAnError(t *testing.T) {
	_, err := List(DefaultWalker, filepath.Join(t.TempDir(), "missing"), zap.NewNop())
	assert.Error(t, err)
}

func TestList_IsCaseSensitiveOnExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.LOG"), []byte("x"), 0o644))

	files, err := List(DefaultWalker, dir, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, files)
}
