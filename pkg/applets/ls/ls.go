// Package ls implements the ls command.
package ls

import (
	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fileutil"
	sbfs "github.com/rcarmo/go-minibox/pkg/core/fs"
	"github.com/rcarmo/go-minibox/pkg/core/tree"
)

// Options holds ls command options.
type Options struct {
	All       bool // -a, --all: show hidden entries, plus . and ..
	Recursive bool // -R, -r: list directories recursively
}

// Run executes the ls command with the given arguments.
//
// Supported flags:
//
//	-a, --all   Show all entries including those starting with .
//	-R, -r      List directories recursively
//
// PATH defaults to the working directory. A file PATH is echoed back. Entries
// are printed one per line in name order.
func Run(stdio *core.Stdio, args []string) error {
	opts, paths, err := parseArgs(args)
	if err != nil {
		return err
	}
	path := "."
	switch len(paths) {
	case 0:
	case 1:
		path = paths[0]
	default:
		return core.Validation("ls", "only one path may be listed")
	}

	if opts.Recursive {
		for line := range tree.ListTree(path, opts.All) {
			stdio.Println(line)
		}
		return nil
	}
	return list(stdio, path, opts)
}

func parseArgs(args []string) (Options, []string, error) {
	var opts Options
	var paths []string
	for _, arg := range args {
		switch arg {
		case "-a", "--all":
			opts.All = true
		case "-R", "-r":
			opts.Recursive = true
		case "-aR", "-Ra", "-ar", "-ra":
			opts.All, opts.Recursive = true, true
		default:
			if len(arg) > 1 && arg[0] == '-' {
				return opts, nil, core.Validation("ls", "invalid option '"+arg+"'")
			}
			paths = append(paths, arg)
		}
	}
	return opts, paths, nil
}

func list(stdio *core.Stdio, path string, opts Options) error {
	if sbfs.IsFile(path) {
		stdio.Println(path)
		return nil
	}

	entries, err := sbfs.ReadDir(path)
	if err != nil {
		return core.FromFS("read directory", path, err)
	}
	if opts.All {
		stdio.Println(".")
		stdio.Println("..")
	}
	for _, e := range entries {
		if !opts.All && fileutil.IsHidden(e.Name()) {
			continue
		}
		stdio.Println(e.Name())
	}
	return nil
}
