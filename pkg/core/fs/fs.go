// Package fs provides filesystem operations that respect sandbox boundaries.
// Applets should use this package instead of direct os calls.
package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/rcarmo/go-minibox/pkg/sandbox"
)

// ErrSameFile is returned by CopyFile when source and destination are one file.
var ErrSameFile = errors.New("source and destination are the same file")

// PermBits masks the permission, setuid, setgid and sticky bits of st_mode.
const PermBits = 0o7777

const (
	read      = sandbox.AccessRead
	write     = sandbox.AccessWrite
	readWrite = sandbox.AccessRead | sandbox.AccessWrite
)

// Open opens a file for reading.
func Open(path string) (*os.File, error) {
	if err := sandbox.Check(path, read); err != nil {
		return nil, err
	}
	return os.Open(path) // #nosec G304 -- sandbox.Check enforces allowed paths
}

// OpenFile opens a file with flags.
func OpenFile(path string, flag int, perm os.FileMode) (*os.File, error) {
	want := read
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_APPEND) != 0 {
		want = readWrite
	}
	if err := sandbox.Check(path, want); err != nil {
		return nil, err
	}
	return os.OpenFile(path, flag, perm) // #nosec G304 -- sandbox.Check enforces allowed paths
}

// Stat returns file info, following symlinks.
func Stat(path string) (os.FileInfo, error) {
	if err := sandbox.Check(path, read); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

// Lstat returns file info without following symlinks.
func Lstat(path string) (os.FileInfo, error) {
	if err := sandbox.Check(path, read); err != nil {
		return nil, err
	}
	return os.Lstat(path)
}

// Exists reports whether path names any node, dangling symlinks included.
func Exists(path string) bool {
	_, err := Lstat(path)
	return err == nil
}

// IsDir reports whether path is a directory or a symlink to one.
func IsDir(path string) bool {
	info, err := Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path is a regular file or a symlink to one.
func IsFile(path string) bool {
	info, err := Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadDir reads directory contents sorted by name.
func ReadDir(path string) ([]fs.DirEntry, error) {
	if err := sandbox.Check(path, read); err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}

// Mkdir creates a directory.
func Mkdir(path string, perm os.FileMode) error {
	if err := sandbox.Check(path, write); err != nil {
		return err
	}
	return os.Mkdir(path, perm)
}

// MkdirAll creates a directory and parents.
func MkdirAll(path string, perm os.FileMode) error {
	if err := sandbox.Check(path, write); err != nil {
		return err
	}
	return os.MkdirAll(path, perm)
}

// Remove removes a file or empty directory.
func Remove(path string) error {
	if err := sandbox.Check(path, write); err != nil {
		return err
	}
	return os.Remove(path)
}

// RemoveAll removes a path recursively. Unlike os.RemoveAll a missing path
// is reported.
func RemoveAll(path string) error {
	if err := sandbox.Check(path, write); err != nil {
		return err
	}
	if _, err := os.Lstat(path); err != nil {
		return err
	}
	return os.RemoveAll(path)
}

// Rename renames a file.
func Rename(oldpath, newpath string) error {
	if err := sandbox.Check(oldpath, write); err != nil {
		return err
	}
	if err := sandbox.Check(newpath, write); err != nil {
		return err
	}
	return os.Rename(oldpath, newpath)
}

// Link creates newname as a hard link to oldname.
func Link(oldname, newname string) error {
	if err := sandbox.Check(oldname, read); err != nil {
		return err
	}
	if err := sandbox.Check(newname, write); err != nil {
		return err
	}
	return os.Link(oldname, newname)
}

// Symlink creates newname as a symbolic link to oldname. The target is
// stored verbatim and is not checked against the sandbox.
func Symlink(oldname, newname string) error {
	if err := sandbox.Check(newname, write); err != nil {
		return err
	}
	return os.Symlink(oldname, newname)
}

// Mode returns the raw permission bits (PermBits) of path, following symlinks.
func Mode(path string) (uint32, error) {
	if err := sandbox.Check(path, read); err != nil {
		return 0, err
	}
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return uint32(st.Mode) & PermBits, nil
}

// Chmod sets the raw permission bits of path. os.Chmod is not used because
// os.FileMode keeps setuid/setgid/sticky outside the low twelve bits.
func Chmod(path string, mode uint32) error {
	if err := sandbox.Check(path, write); err != nil {
		return err
	}
	if err := unix.Chmod(path, mode&PermBits); err != nil {
		return &os.PathError{Op: "chmod", Path: path, Err: err}
	}
	return nil
}

// Chtimes updates atime/mtime for a path.
func Chtimes(path string, atime time.Time, mtime time.Time) error {
	if err := sandbox.Check(path, write); err != nil {
		return err
	}
	return os.Chtimes(path, atime, mtime)
}

// Getwd returns current working directory.
func Getwd() (string, error) {
	return os.Getwd()
}

// CopyFile copies the content of src to dst, creating or truncating dst.
// New files get 0666 minus umask; an existing dst keeps its mode.
func CopyFile(src, dst string) (err error) {
	in, err := Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if srcInfo, err := in.Stat(); err == nil {
		if dstInfo, err := Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
			return &os.PathError{Op: "copy", Path: dst, Err: ErrSameFile}
		}
	}

	out, err := OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
