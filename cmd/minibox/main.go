// Command minibox is a multi-call binary bundling a minimal set of POSIX
// file utilities.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rcarmo/go-minibox/pkg/applets"
	"github.com/rcarmo/go-minibox/pkg/config"
	"github.com/rcarmo/go-minibox/pkg/core"
)

func main() {
	os.Exit(run(os.Args, core.DefaultStdio()))
}

// run dispatches argv and returns the exit code.
func run(argv []string, stdio *core.Stdio) int {
	a := &app{stdio: stdio}

	// Invoked through a link named after an applet.
	if len(argv) > 0 {
		name := filepath.Base(argv[0])
		if _, ok := applets.Default(applets.Options{}).Lookup(name); ok && name != config.AppName {
			if err := a.setup(); err != nil {
				stdio.Errorf("%s: %v\n", name, err)
				return core.ExitInvalidCommand
			}
			return exitCode(stdio, a.exec(name, argv[1:]))
		}
	}

	root := newRootCmd(a)
	if len(argv) > 1 {
		root.SetArgs(argv[1:])
	} else {
		root.SetArgs([]string{})
	}
	return exitCode(stdio, root.Execute())
}

func exitCode(stdio *core.Stdio, err error) int {
	if err == nil {
		return core.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			stdio.Errorf("%s: %v\n", config.AppName, exitErr.Err)
		}
		return exitErr.Code
	}
	stdio.Errorf("%s: %v\n", config.AppName, err)
	return core.ExitInvalidCommand
}
