package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	store, err := NewStore(t.TempDir(), "http://localhost:8080/")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/media/resumes/cv.pdf", store.URL("resumes/cv.pdf"))
	// Unset paths resolve to nothing, not a dangling media root.
	assert.Equal(t, "", store.URL(""))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "http://localhost:8080")
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "resumes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resumes", "cv.pdf"), []byte("%PDF-1.4"), 0o644))

	data, err := store.ReadFile("resumes/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)

	_, err = store.ReadFile("resumes/missing.pdf")
	assert.Error(t, err)
}
