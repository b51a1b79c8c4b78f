// Package runtimetools holds small helpers around the running program:
// where it lives, what it writes, and casting loosely typed arguments.
package runtimetools

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// GetPath returns the directory of the running executable. Under go run and
// go test the executable sits in a temporary build directory, so the
// directory of the calling source file is returned instead.
func GetPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "locating executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := filepath.Dir(exe)
	if !isBuildDir(dir) {
		return filepath.ToSlash(dir), nil
	}

	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return "", errors.New("caller source file unknown")
	}
	return filepath.ToSlash(filepath.Dir(file)), nil
}

func isBuildDir(dir string) bool {
	tmp := os.TempDir()
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil {
		tmp = resolved
	}
	return strings.HasPrefix(dir, tmp) || strings.Contains(filepath.ToSlash(dir), "/go-build")
}
