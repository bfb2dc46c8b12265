package fileutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.pdf")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Idempotent
	assert.NoError(t, EnsureDirectoryExists(dir))
}

func TestValidatePDF(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "statement.pdf")
	require.NoError(t, os.WriteFile(valid, []byte("%PDF-1.4 content"), 0600))

	wrongExt := filepath.Join(dir, "statement.txt")
	require.NoError(t, os.WriteFile(wrongExt, []byte("text"), 0600))

	tooBig := filepath.Join(dir, "big.pdf")
	require.NoError(t, os.WriteFile(tooBig, []byte(strings.Repeat("x", 2*1024*1024)), 0600))

	tests := []struct {
		name      string
		path      string
		maxSizeMB int64
		wantErr   string
	}{
		{"valid pdf", valid, 10, ""},
		{"uppercase extension accepted", valid, 10, ""},
		{"missing file", filepath.Join(dir, "nope.pdf"), 10, "does not exist"},
		{"directory", dir, 10, "directory"},
		{"wrong extension", wrongExt, 10, ".pdf extension"},
		{"oversized", tooBig, 1, "maximum size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePDF(tc.path, tc.maxSizeMB)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512.00 B", FormatFileSize(512))
	assert.Equal(t, "1.00 KB", FormatFileSize(1024))
	assert.Equal(t, "1.50 MB", FormatFileSize(1572864))
	assert.Equal(t, "2.00 GB", FormatFileSize(2147483648))
}
