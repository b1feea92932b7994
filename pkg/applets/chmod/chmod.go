// Package chmod implements the chmod command.
package chmod

import (
	"strings"

	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
	"github.com/rcarmo/go-minibox/pkg/core/perm"
)

// Command is chmod bound to a subtraction behaviour.
type Command struct {
	Subtraction perm.Subtraction
}

// Run executes chmod with the default (toggling) subtraction.
func Run(stdio *core.Stdio, args []string) error {
	return Command{}.Run(stdio, args)
}

// Run changes the mode of each file.
//
//	chmod MODE FILE...
//
// MODE is either an octal literal such as 755, or a symbolic expression such
// as u+x, go-w or a+rw evaluated against each file's current mode.
func (c Command) Run(stdio *core.Stdio, args []string) error {
	if len(args) < 2 {
		return core.Validation("chmod", "can't use 'chmod' like this")
	}
	expr, files := args[0], args[1:]
	if strings.HasPrefix(expr, "-") {
		return core.Validation("chmod", "can't use 'chmod' with option '"+expr+"'")
	}

	log := stdio.Logger()
	for _, file := range files {
		mode, err := perm.Translate(expr, file, perm.WithSubtraction(c.Subtraction))
		if err != nil {
			return err
		}
		if err := fs.Chmod(file, uint32(mode)); err != nil {
			return core.FromFS("chmod", file, err)
		}
		log.Debug("changed mode", "path", file, "mode", mode.String())
	}
	return nil
}
