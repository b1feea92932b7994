// Package cat implements the cat command.
package cat

import (
	"io"

	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
)

// Run streams each file to stdout in order, stopping at the first file that
// cannot be read.
func Run(stdio *core.Stdio, args []string) error {
	if len(args) == 0 {
		return core.Validation("cat", "can't use 'cat' on nothing")
	}

	for _, file := range args {
		if err := catFile(stdio, file); err != nil {
			return err
		}
	}
	return nil
}

func catFile(stdio *core.Stdio, path string) error {
	f, err := fs.Open(path)
	if err != nil {
		return core.FromFS("open", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(stdio.Out, f); err != nil {
		return core.IO("read", path, err)
	}
	return nil
}
