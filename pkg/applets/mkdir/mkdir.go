// Package mkdir implements the mkdir command.
package mkdir

import (
	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
)

// Run creates each directory in turn. Parents are not created and every
// argument is an operand.
func Run(stdio *core.Stdio, args []string) error {
	if len(args) == 0 {
		return core.Validation("mkdir", "can't use 'mkdir' on nothing")
	}

	for _, dir := range args {
		if err := fs.Mkdir(dir, 0o777); err != nil {
			return core.FromFS("create directory", dir, err)
		}
		stdio.Logger().Debug("created directory", "path", dir)
	}
	return nil
}
