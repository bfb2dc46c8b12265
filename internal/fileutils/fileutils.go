// Package fileutils provides common file operations used throughout the
// application, including statement file validation.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rkapoor/cardstmt/internal/parsererror"
)

// DefaultMaxPDFSizeMB is the default upper bound for statement files.
const DefaultMaxPDFSizeMB int64 = 10

// FileExists checks if a file exists and is not a directory.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists.
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist.
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ValidatePDF checks that the path points to an existing .pdf file no larger
// than maxSizeMB. It returns a ValidationError describing the first failed
// check.
func ValidatePDF(filePath string, maxSizeMB int64) error {
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxPDFSizeMB
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return &parsererror.ValidationError{
			FilePath: filePath,
			Reason:   "file does not exist",
		}
	}
	if info.IsDir() {
		return &parsererror.ValidationError{
			FilePath: filePath,
			Reason:   "path is a directory",
		}
	}

	if !strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		return &parsererror.ValidationError{
			FilePath: filePath,
			Reason:   "file does not have a .pdf extension",
		}
	}

	if info.Size() > maxSizeMB*1024*1024 {
		return &parsererror.ValidationError{
			FilePath: filePath,
			Reason:   fmt.Sprintf("file exceeds maximum size of %d MB", maxSizeMB),
		}
	}

	return nil
}

// FormatFileSize renders a byte count in a human-readable unit.
func FormatFileSize(sizeBytes int64) string {
	size := float64(sizeBytes)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.2f TB", size)
}
