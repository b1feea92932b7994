// Package echo implements the echo command.
package echo

import (
	"strings"

	"github.com/rcarmo/go-minibox/pkg/core"
)

// Run joins its arguments with single spaces and prints them. A leading
// "-n" suppresses the trailing newline; no other flags are recognised.
func Run(stdio *core.Stdio, args []string) error {
	noNewline := false
	if len(args) > 0 && args[0] == "-n" {
		noNewline = true
		args = args[1:]
		if len(args) == 0 {
			return core.Validation("echo", "can't call 'echo -n' on nothing")
		}
	}
	if len(args) == 0 {
		return core.Validation("echo", "not enough arguments")
	}

	output := strings.Join(args, " ")
	if noNewline {
		stdio.Print(output)
	} else {
		stdio.Println(output)
	}
	return nil
}
