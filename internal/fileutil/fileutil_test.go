package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain name",
			input:    "Dune",
			expected: "Dune",
		},
		{
			name:     "colon",
			input:    "Dune: Messiah",
			expected: "Dune - Messiah",
		},
		{
			name:     "slashes",
			input:    "Fall/Winter\\Spring",
			expected: "Fall-Winter-Spring",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeFilename(tc.input))
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	assert.False(t, FileExists(filepath.Join(dir, "missing.json")))

	path := filepath.Join(dir, "present.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))
	assert.True(t, FileExists(path))

	// Directories are not files
	assert.False(t, FileExists(dir))
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()

	first := UniquePath(dir, "cover.jpg")
	assert.Equal(t, filepath.Join(dir, "cover.jpg"), first)

	require.NoError(t, os.WriteFile(first, []byte("x"), 0644))

	second := UniquePath(dir, "cover.jpg")
	assert.Equal(t, filepath.Join(dir, "cover-1.jpg"), second)

	require.NoError(t, os.WriteFile(second, []byte("x"), 0644))

	third := UniquePath(dir, "cover.jpg")
	assert.Equal(t, filepath.Join(dir, "cover-2.jpg"), third)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	dst := filepath.Join(dir, "sub", "dst.bin")
	require.NoError(t, CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	// Never overwrites
	err = CopyFile(src, dst)
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "library.json")

	require.NoError(t, WriteFileAtomic(path, []byte(`[{"key":"1"}]`), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[{"key":"1"}]`, string(data))

	// Overwrite replaces the previous content in full
	require.NoError(t, WriteFileAtomic(path, []byte("[]"), 0644))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteJSONFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	require.NoError(t, WriteJSONFileAtomic(map[string]any{"appearance_mode": "dark"}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "dark", decoded["appearance_mode"])
}

func TestWriteFileWithOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")

	written, err := WriteFileWithOverwrite(path, []byte("first"), 0644, false)
	require.NoError(t, err)
	assert.True(t, written)

	// Existing file is skipped without the overwrite flag
	written, err = WriteFileWithOverwrite(path, []byte("second"), 0644, false)
	require.NoError(t, err)
	assert.False(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	written, err = WriteFileWithOverwrite(path, []byte("second"), 0644, true)
	require.NoError(t, err)
	assert.True(t, written)
}
