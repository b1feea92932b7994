// Package fileutil provides shared helpers for filesystem applets.
package fileutil

import (
	"path/filepath"
	"strings"
)

// BaseName returns the final path element of p. It reports false when p has
// no name of its own: empty, the root, or ending in "." or "..".
func BaseName(p string) (string, bool) {
	if p == "" {
		return "", false
	}
	trimmed := strings.TrimRight(p, string(filepath.Separator))
	if trimmed == "" {
		return "", false
	}
	base := filepath.Base(trimmed)
	if base == "." || base == ".." {
		return "", false
	}
	return base, true
}

// TargetPath returns the final target for a source and destination: the
// destination itself, or the source's base name inside it when destIsDir.
func TargetPath(src, dest string, destIsDir bool) (string, bool) {
	if !destIsDir {
		return dest, true
	}
	base, ok := BaseName(src)
	if !ok {
		return "", false
	}
	return filepath.Join(dest, base), true
}

// IsHidden reports whether a directory entry name starts with the hidden marker.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
