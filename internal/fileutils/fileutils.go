// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/bai-csv/internal/logging"
)

var log = logging.GetLogger()

// SetLogger sets a custom logger for this package
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// EnsureParentDirectory creates the parent directory of the given path if it
// does not exist yet.
func EnsureParentDirectory(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory",
			logging.Field{Key: logging.FieldFile, Value: dir})
		return fmt.Errorf("error creating directory: %w", err)
	}
	return nil
}

// ReadFile reads a whole file into memory, logging the operation.
func ReadFile(filePath string) ([]byte, error) {
	log.Debug("Reading file", logging.Field{Key: logging.FieldFile, Value: filePath})
	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	return data, nil
}

// WriteFile writes data to a file, creating the parent directory if needed.
func WriteFile(filePath string, data []byte) error {
	if err := EnsureParentDirectory(filePath); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing file %s: %w", filePath, err)
	}
	log.Debug("Wrote file",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(data)})
	return nil
}
