// Package ln implements the ln command.
package ln

import (
	"strings"

	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
)

// Run creates LINK as a hard link to TARGET, or a symbolic link with -s.
//
//	ln [-s|--symbolic] TARGET LINK
func Run(stdio *core.Stdio, args []string) error {
	if len(args) == 0 {
		return core.Validation("ln", "can't use 'ln' on nothing")
	}

	symbolic := false
	switch {
	case args[0] == "-s" || args[0] == "--symbolic":
		symbolic = true
		args = args[1:]
	case strings.HasPrefix(args[0], "-"):
		return core.Validation("ln", "invalid option '"+args[0]+"'")
	}
	if len(args) != 2 {
		return core.Validation("ln", "expected TARGET and LINK")
	}

	target, link := args[0], args[1]
	var err error
	if symbolic {
		err = fs.Symlink(target, link)
	} else {
		err = fs.Link(target, link)
	}
	if err != nil {
		return core.FromFS("link", link, err)
	}
	stdio.Logger().Debug("linked", "target", target, "link", link, "symbolic", symbolic)
	return nil
}
