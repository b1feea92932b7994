// Package cp implements the cp command.
package cp

import (
	"context"
	"strings"

	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fileutil"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
	"github.com/rcarmo/go-minibox/pkg/core/tree"
)

// Options holds cp command options.
type Options struct {
	Recursive bool // -r, -R, --recursive: copy directories recursively
	Verbose   bool // -v: print each copied path
}

// Run executes the cp command with the given arguments.
//
//	cp [-r|-R|--recursive] [-v] SRC... DEST
//
// A single source is copied to DEST, or into it when DEST is a directory.
// Several sources need DEST to be an existing directory. Only content is
// copied; modes and timestamps are not preserved.
func Run(stdio *core.Stdio, args []string) error {
	if len(args) == 0 {
		return core.Validation("cp", "can't use 'cp' with no arguments")
	}

	opts, paths, err := parseArgs(args)
	if err != nil {
		return err
	}
	if len(paths) < 2 {
		return core.Validation("cp", "missing destination file operand")
	}

	dest := paths[len(paths)-1]
	sources := paths[:len(paths)-1]
	destIsDir := fs.IsDir(dest)
	if len(sources) > 1 && !destIsDir {
		return core.Validation("cp", "target '"+dest+"' is not a directory")
	}

	for _, src := range sources {
		var err error
		if opts.Recursive {
			err = copyTree(stdio, src, dest, opts)
		} else {
			err = copyFile(stdio, src, dest, destIsDir, opts)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseArgs(args []string) (Options, []string, error) {
	var opts Options
	var paths []string
	for i, arg := range args {
		if arg == "--" {
			paths = append(paths, args[i+1:]...)
			break
		}
		switch arg {
		case "-r", "-R", "--recursive":
			opts.Recursive = true
			continue
		case "-v", "--verbose":
			opts.Verbose = true
			continue
		}
		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			return opts, nil, core.Validation("cp", "invalid option '"+arg+"'")
		}
		paths = append(paths, arg)
	}
	return opts, paths, nil
}

func copyTree(stdio *core.Stdio, src, dest string, opts Options) error {
	copyOpts := []tree.CopyOption{tree.WithLogger(stdio.Logger())}
	if opts.Verbose {
		copyOpts = append(copyOpts, tree.WithObserver(func(s, d string) {
			stdio.Printf("'%s' -> '%s'\n", s, d)
		}))
	}
	return tree.CopyTree(context.Background(), src, dest, copyOpts...)
}

func copyFile(stdio *core.Stdio, src, dest string, destIsDir bool, opts Options) error {
	if fs.IsDir(src) {
		return core.Validation("cp", "-r not specified; omitting directory '"+src+"'")
	}
	target, ok := fileutil.TargetPath(src, dest, destIsDir)
	if !ok {
		return core.Validation("cp", "invalid source file path '"+src+"'")
	}
	if err := fs.CopyFile(src, target); err != nil {
		return core.FromFS("copy", src, err)
	}
	stdio.Logger().Debug("copied", "src", src, "dst", target)
	if opts.Verbose {
		stdio.Printf("'%s' -> '%s'\n", src, target)
	}
	return nil
}
