// Package applets assembles the minibox command table.
package applets

import (
	"github.com/rcarmo/go-minibox/pkg/applets/cat"
	"github.com/rcarmo/go-minibox/pkg/applets/chmod"
	"github.com/rcarmo/go-minibox/pkg/applets/cp"
	"github.com/rcarmo/go-minibox/pkg/applets/echo"
	"github.com/rcarmo/go-minibox/pkg/applets/grep"
	"github.com/rcarmo/go-minibox/pkg/applets/ln"
	"github.com/rcarmo/go-minibox/pkg/applets/ls"
	"github.com/rcarmo/go-minibox/pkg/applets/mkdir"
	"github.com/rcarmo/go-minibox/pkg/applets/mv"
	"github.com/rcarmo/go-minibox/pkg/applets/pwd"
	"github.com/rcarmo/go-minibox/pkg/applets/rm"
	"github.com/rcarmo/go-minibox/pkg/applets/rmdir"
	"github.com/rcarmo/go-minibox/pkg/applets/touch"
	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/perm"
	"github.com/rcarmo/go-minibox/pkg/registry"
)

// Options tunes applet behaviour that is configurable.
type Options struct {
	ChmodSubtraction perm.Subtraction
	GrepPOSIX        bool
}

// Default returns a registry holding every minibox applet.
func Default(opts Options) *registry.Registry {
	r := registry.New()
	for _, a := range []registry.Applet{
		{Name: "pwd", Usage: "pwd", Run: pwd.Run, FailureCode: core.ExitSuccess, InvalidAsUnknown: true},
		{Name: "echo", Usage: "echo [-n] WORD...", Run: echo.Run, FailureCode: core.ExitEcho},
		{Name: "cat", Usage: "cat FILE...", Run: cat.Run, FailureCode: core.ExitCat},
		{Name: "mkdir", Usage: "mkdir DIR...", Run: mkdir.Run, FailureCode: core.ExitMkdir},
		{Name: "mv", Usage: "mv SRC... DEST", Run: mv.Run, FailureCode: core.ExitMv},
		{Name: "ln", Usage: "ln [-s|--symbolic] TARGET LINK", Run: ln.Run, FailureCode: core.ExitLn, ReportInvalid: true},
		{Name: "rmdir", Usage: "rmdir DIR...", Run: rmdir.Run, FailureCode: core.ExitRmdir},
		{Name: "rm", Usage: "rm [-d|--dir] [-r|-R|--recursive] PATH...", Run: rm.Run, FailureCode: core.ExitRm, ReportInvalid: true},
		{Name: "cp", Usage: "cp [-r|-R|--recursive] [-v] SRC... DEST", Run: cp.Run, FailureCode: core.ExitCp},
		{
			Name:          "chmod",
			Usage:         "chmod MODE FILE...",
			Run:           chmod.Command{Subtraction: opts.ChmodSubtraction}.Run,
			FailureCode:   core.ExitChmod,
			ReportInvalid: true,
		},
		{Name: "touch", Usage: "touch [-a] [-m] [-c|--no-create] FILE...", Run: touch.Run, FailureCode: core.ExitTouch},
		{Name: "ls", Usage: "ls [-a|--all] [-R|-r] [PATH]", Run: ls.Run, FailureCode: core.ExitLs},
		{Name: "grep", Usage: "grep [-i] [-v] [-n] PATTERN FILE...", Run: grep.Command{POSIX: opts.GrepPOSIX}.Run, FailureCode: core.ExitSuccess},
	} {
		r.Register(a)
	}
	return r
}
