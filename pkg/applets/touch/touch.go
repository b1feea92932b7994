// Package touch implements the touch command.
package touch

import (
	"errors"
	iofs "io/fs"
	"os"
	"strings"
	"time"

	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
)

// Options holds touch command options.
type Options struct {
	Access   bool // -a: change only the access time
	Modify   bool // -m: change only the modification time
	NoCreate bool // -c, --no-create: do not create missing files
}

// now is swapped by tests.
var now = time.Now

// Run executes the touch command with the given arguments.
//
//	touch [-a] [-m] [-c|--no-create] FILE...
//
// Missing files are created empty. Existing files keep their content; their
// access and modification times are set to the current time.
func Run(stdio *core.Stdio, args []string) error {
	opts, files, err := parseArgs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return core.Validation("touch", "can't use just 'touch'")
	}
	if !opts.Access && !opts.Modify {
		opts.Access, opts.Modify = true, true
	}

	for _, file := range files {
		if err := touch(stdio, file, opts); err != nil {
			return err
		}
	}
	return nil
}

func parseArgs(args []string) (Options, []string, error) {
	var opts Options
	for i, arg := range args {
		switch arg {
		case "-a":
			opts.Access = true
		case "-m":
			opts.Modify = true
		case "-c", "--no-create":
			opts.NoCreate = true
		case "--":
			return opts, args[i+1:], nil
		default:
			if strings.HasPrefix(arg, "-") && len(arg) > 1 {
				return opts, nil, core.Validation("touch", "invalid option '"+arg+"'")
			}
			return opts, args[i:], nil
		}
	}
	return opts, nil, nil
}

func touch(stdio *core.Stdio, path string, opts Options) error {
	_, err := fs.Stat(path)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		if opts.NoCreate {
			return nil
		}
		f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o666)
		if err != nil {
			return core.FromFS("create", path, err)
		}
		if err := f.Close(); err != nil {
			return core.IO("create", path, err)
		}
		stdio.Logger().Debug("created", "path", path)
		return nil
	case err != nil:
		return core.Lookup(path, err)
	}

	// A zero time leaves that timestamp unchanged.
	var atime, mtime time.Time
	t := now()
	if opts.Access {
		atime = t
	}
	if opts.Modify {
		mtime = t
	}
	if err := fs.Chtimes(path, atime, mtime); err != nil {
		return core.FromFS("touch", path, err)
	}
	stdio.Logger().Debug("touched", "path", path, "access", opts.Access, "modify", opts.Modify)
	return nil
}
