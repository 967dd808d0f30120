package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.bai")
	require.NoError(t, os.WriteFile(file, []byte("01/"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "absent.bai")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestWriteAndReadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "out.csv")
	require.NoError(t, WriteFile(file, []byte("a,b,c\n")))

	data, err := ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, []byte("a,b,c\n"), data)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
