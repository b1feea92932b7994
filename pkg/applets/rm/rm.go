// Package rm implements the rm command.
package rm

import (
	"errors"
	iofs "io/fs"
	"strings"

	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
)

var errNotFile = errors.New("not a file; use -d or -r to remove directories")

// Options holds rm command options.
type Options struct {
	Dir       bool // -d, --dir: remove empty directories
	Recursive bool // -r, -R, --recursive: remove directories and their contents
}

// Run executes the rm command with the given arguments.
//
// Supported flags, which must precede the operands:
//
//	-d, --dir             Remove empty directories
//	-r, -R, --recursive   Remove directories recursively; missing operands are skipped
//
// With both flags every non-file operand is removed recursively and missing
// operands are an error. Without flags only files are removed; directories
// are reported once every file operand was handled.
func Run(stdio *core.Stdio, args []string) error {
	if len(args) == 0 {
		return core.Validation("rm", "can't use 'rm' on nothing")
	}

	opts, paths, err := parseArgs(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return core.Validation("rm", "missing operand")
	}

	log := stdio.Logger()
	var skipped string
	for _, path := range paths {
		info, statErr := fs.Lstat(path)
		exists := statErr == nil
		isFile := exists && !info.IsDir()
		if statErr != nil && !errors.Is(statErr, iofs.ErrNotExist) {
			return core.Lookup(path, statErr)
		}

		switch {
		case isFile:
			err = fs.Remove(path)
		case opts.Dir && opts.Recursive:
			err = fs.RemoveAll(path)
		case opts.Recursive:
			if !exists {
				log.Debug("skipping missing operand", "path", path)
				continue
			}
			err = fs.RemoveAll(path)
		case opts.Dir:
			err = fs.Remove(path)
		default:
			if skipped == "" {
				skipped = path
			}
			continue
		}
		if err != nil {
			return core.FromFS("remove", path, err)
		}
		log.Debug("removed", "path", path)
	}

	if skipped != "" {
		return core.IO("remove", skipped, errNotFile)
	}
	return nil
}

func parseArgs(args []string) (Options, []string, error) {
	var opts Options
	for i, arg := range args {
		switch arg {
		case "-d", "--dir":
			opts.Dir = true
		case "-r", "-R", "--recursive":
			opts.Recursive = true
		default:
			if strings.HasPrefix(arg, "-") && len(arg) > 1 {
				return opts, nil, core.Validation("rm", "invalid option '"+arg+"'")
			}
			return opts, args[i:], nil
		}
	}
	return opts, nil, nil
}
