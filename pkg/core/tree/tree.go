// Package tree implements the recursive walks behind cp -r and ls -R.
package tree

import (
	"errors"
	"io/fs"

	sbfs "github.com/rcarmo/go-minibox/pkg/core/fs"
)

// Kind classifies a filesystem node.
type Kind int

const (
	Absent Kind = iota
	File
	Dir
	Symlink
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Dir:
		return "directory"
	case Symlink:
		return "symlink"
	default:
		return "absent"
	}
}

// Classify returns the kind of path without following a final symlink.
// Errors other than "does not exist" are returned with Absent.
func Classify(path string) (Kind, error) {
	info, err := sbfs.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Absent, nil
		}
		return Absent, err
	}
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return Symlink, nil
	case info.IsDir():
		return Dir, nil
	default:
		return File, nil
	}
}

// resolvesToDir reports whether a node of kind k at path should be walked
// as a directory. Symlinks are followed.
func resolvesToDir(k Kind, path string) bool {
	switch k {
	case Dir:
		return true
	case Symlink:
		return sbfs.IsDir(path)
	default:
		return false
	}
}
