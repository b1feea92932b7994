// Package rmdir implements the rmdir command.
package rmdir

import (
	"errors"
	iofs "io/fs"

	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
)

// Run removes each empty directory in turn.
func Run(stdio *core.Stdio, args []string) error {
	if len(args) == 0 {
		return core.Validation("rmdir", "can't use 'rmdir' on nothing")
	}

	for _, dir := range args {
		info, err := fs.Lstat(dir)
		if errors.Is(err, iofs.ErrNotExist) {
			return core.NotFound(dir)
		}
		if err != nil {
			return core.Lookup(dir, err)
		}
		if !info.IsDir() {
			return core.Validation("rmdir", "'"+dir+"': Not a directory")
		}
		if err := fs.Remove(dir); err != nil {
			return core.FromFS("remove", dir, err)
		}
		stdio.Logger().Debug("removed directory", "path", dir)
	}
	return nil
}
