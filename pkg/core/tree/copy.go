package tree

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fileutil"
	sbfs "github.com/rcarmo/go-minibox/pkg/core/fs"
)

const applet = "cp"

// CopyOption configures CopyTree.
type CopyOption func(*copier)

// WithObserver registers fn to be called after every directory created and
// every file copied.
func WithObserver(fn func(src, dst string)) CopyOption {
	return func(c *copier) { c.observe = fn }
}

// WithLogger sets the logger used for debug traces of the walk.
func WithLogger(l *log.Logger) CopyOption {
	return func(c *copier) { c.log = l }
}

type copier struct {
	observe func(src, dst string)
	log     *log.Logger
	// resolved source directories on the current path, for symlink loops
	active map[string]bool
}

// CopyTree copies source into destination.
//
// A directory source lands at destination when destination does not exist,
// and at destination/<base(source)> when it does; missing parents are
// created. Children are copied in enumeration order, subdirectories
// recursively. A file source is copied to destination, or into it when
// destination is a directory. Only content is copied.
//
// The first failure aborts the walk; whatever was copied before stays.
func CopyTree(ctx context.Context, source, destination string, opts ...CopyOption) error {
	c := &copier{active: make(map[string]bool)}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
	}

	kind, err := Classify(source)
	if err != nil {
		return core.IO("stat", source, err)
	}
	if kind == Absent {
		return core.NotFound(source)
	}
	if resolvesToDir(kind, source) {
		return c.dir(ctx, source, destination)
	}
	return c.file(source, destination)
}

func (c *copier) dir(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := dst
	if sbfs.Exists(dst) {
		base, ok := fileutil.BaseName(src)
		if !ok {
			return core.Validation(applet, fmt.Sprintf("cannot name a copy of '%s'", src))
		}
		target = filepath.Join(dst, base)
	}

	real, err := realPath(src)
	if err != nil {
		return core.FromFS("resolve", src, err)
	}
	if inside(target, real) {
		return core.Validation(applet, fmt.Sprintf("cannot copy a directory, '%s', into itself, '%s'", src, target))
	}
	if c.active[real] {
		return core.Validation(applet, fmt.Sprintf("symbolic link loop at '%s'", src))
	}
	c.active[real] = true
	defer delete(c.active, real)

	if err := sbfs.MkdirAll(target, 0o777); err != nil {
		return core.IO("create directory", target, err)
	}
	c.copied(src, target)

	entries, err := sbfs.ReadDir(src)
	if err != nil {
		return core.IO("read directory", src, err)
	}
	for _, e := range entries {
		child := filepath.Join(src, e.Name())
		kind, err := Classify(child)
		if err != nil {
			return core.IO("stat", child, err)
		}
		if kind == Absent {
			return core.IO("copy", child, fs.ErrNotExist)
		}
		if resolvesToDir(kind, child) {
			if err := c.dir(ctx, child, target); err != nil {
				return err
			}
			continue
		}
		if err := c.content(child, filepath.Join(target, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (c *copier) file(src, dst string) error {
	target, ok := fileutil.TargetPath(src, dst, sbfs.IsDir(dst))
	if !ok {
		return core.Validation(applet, fmt.Sprintf("cannot name a copy of '%s'", src))
	}
	return c.content(src, target)
}

func (c *copier) content(src, dst string) error {
	if err := sbfs.CopyFile(src, dst); err != nil {
		return core.IO("copy", dst, err)
	}
	c.copied(src, dst)
	return nil
}

func (c *copier) copied(src, dst string) {
	c.log.Debug("copied", "src", src, "dst", dst)
	if c.observe != nil {
		c.observe(src, dst)
	}
}

func realPath(p string) (string, error) {
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// inside reports whether path lies within dir once both are made absolute.
// path need not exist; its deepest existing ancestor is resolved.
func inside(path, dir string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	resolved := resolveExisting(abs)
	rootAbs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	if resolved == rootAbs {
		return true
	}
	return strings.HasPrefix(resolved, rootAbs+string(filepath.Separator))
}

func resolveExisting(p string) string {
	var tail []string
	for {
		if real, err := filepath.EvalSymlinks(p); err == nil {
			return filepath.Join(append([]string{real}, tail...)...)
		}
		parent := filepath.Dir(p)
		if parent == p {
			return filepath.Join(append([]string{p}, tail...)...)
		}
		tail = append([]string{filepath.Base(p)}, tail...)
		p = parent
	}
}
