// Package pwd implements the pwd command.
package pwd

import (
	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
)

// Run prints the working directory. pwd takes no arguments.
func Run(stdio *core.Stdio, args []string) error {
	if len(args) > 0 {
		return core.Validation("pwd", "unexpected argument '"+args[0]+"'")
	}

	dir, err := fs.Getwd()
	if err != nil {
		return core.IO("getwd", ".", err)
	}
	stdio.Println(dir)
	return nil
}
