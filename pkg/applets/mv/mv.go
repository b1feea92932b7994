// Package mv implements the mv command.
package mv

import (
	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fileutil"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
)

// Run renames each source to the last operand, or into it when the last
// operand is an existing directory.
func Run(stdio *core.Stdio, args []string) error {
	if len(args) == 0 {
		return core.Validation("mv", "can't use 'mv' on nothing")
	}
	if len(args) < 2 {
		return core.Validation("mv", "missing destination file operand after '"+args[0]+"'")
	}

	dest := args[len(args)-1]
	sources := args[:len(args)-1]
	destIsDir := fs.IsDir(dest)

	if len(sources) > 1 && !destIsDir {
		return core.Validation("mv", "target '"+dest+"' is not a directory")
	}

	for _, src := range sources {
		target, ok := fileutil.TargetPath(src, dest, destIsDir)
		if !ok {
			return core.Validation("mv", "cannot move '"+src+"'")
		}
		if err := fs.Rename(src, target); err != nil {
			return core.FromFS("rename", src, err)
		}
		stdio.Logger().Debug("renamed", "src", src, "dst", target)
	}
	return nil
}
