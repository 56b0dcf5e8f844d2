package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("# test\n"), 0644))
	}
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.hcl", "a.yaml", "nested/c.HCL", "notes.txt")

	files, err := FindFilesByExtension([]string{root}, ".hcl", ".yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.yaml"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.HCL"),
	}, files)
}

func TestFindFilesByExtension_DeduplicatesAndFiltersFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.hcl", "notes.txt")
	explicit := filepath.Join(root, "a.hcl")

	files, err := FindFilesByExtension([]string{explicit, root, filepath.Join(root, "notes.txt")}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{explicit}, files)
}

func TestFindFilesByExtension_MissingPath(t *testing.T) {
	_, err := FindFilesByExtension([]string{filepath.Join(t.TempDir(), "missing")}, ".hcl")
	require.ErrorIs(t, err, os.ErrNotExist)
}
