// 15 Oct 2026

// Package common has the few constants and helpers shared by the
// commands and their tests.
package common

import (
	"fmt"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns the
// filename. The caller removes the file.
func WrtTemp(s string) (string, error) {
	return WrtTempBytes([]byte(s))
}

// WrtTempBytes is WrtTemp for data that is not text, like gzipped
// sequences.
func WrtTempBytes(b []byte) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()
	if _, err := f_tmp.Write(b); err != nil {
		os.Remove(f_tmp.Name())
		return "", fmt.Errorf("writing to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}
