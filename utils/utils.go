// Package utils holds small helpers shared across the pipeline stages.
package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// LogError logs the error with the given message and fields, skipping
// nil errors so call sites don't need to guard.
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if logger == nil || err == nil {
		return
	}
	fields = append(fields, zap.Error(err))
	logger.Error(msg, fields...)
}

// CheckFileExists reports whether a file is present at path.
func CheckFileExists(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}
	return true
}

// EnsureParentDir creates the parent directory of path if it is missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o777)
}
