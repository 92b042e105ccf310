// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirPermissions is used for every directory the tool creates.
const DirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// ErrPathComponent is returned when a name meant for a single path element
// contains a separator or a null byte.
var ErrPathComponent = errors.New("name contains path separator or null byte")

// ValidatePathComponent checks that s is safe to splice into a file name.
// The empty string is accepted.
func ValidatePathComponent(s string) error {
	if strings.ContainsAny(s, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrPathComponent, s)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ResolveDir returns the absolute form of dir when dir names an existing
// directory. Otherwise dir is returned unchanged.
//
// Symbolic links are kept as written, the same way a shell's logical working
// directory keeps them.
func ResolveDir(dir string) string {
	if !DirExists(dir) {
		return dir
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

// AbsPath resolves the directory part of path with ResolveDir and appends
// the base name.
//
// Examples (cwd = /home/me, ./docs exists, ./missing does not):
//   - "docs/report.Rmd"    -> "/home/me/docs/report.Rmd"
//   - "report.Rmd"         -> "/home/me/report.Rmd"
//   - "missing/report.Rmd" -> "missing/report.Rmd"
func AbsPath(path string) string {
	return filepath.Join(ResolveDir(filepath.Dir(path)), filepath.Base(path))
}

// Ext returns the extension of the last path element without its leading
// dot, or "" when there is none.
func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// StripExt removes the last extension of the last path element.
func StripExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// BaseName returns the last path element without its extension.
func BaseName(path string) string {
	return StripExt(filepath.Base(path))
}

// EnsureDir creates dir and any missing parents. It succeeds when dir
// already exists.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "rmdrender"            -> false (name)
//   - "./rmdrender.yaml"     -> true (relative path)
//   - "/etc/rmdrender.yaml"  -> true (absolute)
//   - "C:\conf\render.yaml"  -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
