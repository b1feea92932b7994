package core

import (
	stderrors "errors"
	"io/fs"

	"gopkg.in/src-d/go-errors.v1"
)

// Error kinds shared by every applet.
var (
	// ErrValidation is raised for malformed arguments: too few operands,
	// unknown flags, unparseable expressions.
	ErrValidation = errors.NewKind("%s: %s")
	// ErrNotFound is raised when a source path does not exist.
	ErrNotFound = errors.NewKind("%s: no such file or directory")
	// ErrLookup is raised when the metadata of a path cannot be read.
	ErrLookup = errors.NewKind("cannot read metadata of %s")
	// ErrIO is raised for underlying read/write/rename/link/chmod failures.
	ErrIO = errors.NewKind("%s %s")
)

// Validation returns an ErrValidation for the named command.
func Validation(cmd, msg string) error {
	return ErrValidation.New(cmd, msg)
}

// NotFound returns an ErrNotFound for path.
func NotFound(path string) error {
	return ErrNotFound.New(path)
}

// Lookup wraps a metadata read failure.
func Lookup(path string, cause error) error {
	return ErrLookup.Wrap(cause, path)
}

// IO wraps a failed filesystem operation.
func IO(op, path string, cause error) error {
	return ErrIO.Wrap(cause, op, path)
}

// FromFS classifies an error returned by the filesystem layer: missing paths
// become ErrNotFound, everything else ErrIO. Errors that already carry a kind
// are returned unchanged.
func FromFS(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if IsKnown(err) {
		return err
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return ErrNotFound.Wrap(err, path)
	}
	return IO(op, path, err)
}

// IsKnown reports whether err belongs to one of the applet error kinds.
func IsKnown(err error) bool {
	return errors.Any(err, ErrValidation, ErrNotFound, ErrLookup, ErrIO)
}
