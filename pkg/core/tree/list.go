package tree

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/rcarmo/go-minibox/pkg/core/fileutil"
	sbfs "github.com/rcarmo/go-minibox/pkg/core/fs"
)

// ListTree walks root depth-first and yields, for every directory it can
// read, a "<path>:" header followed by the names of its entries. With
// showHidden the listing also carries "." and ".." and dot-files. Hidden
// directories are descended into either way; only their names are filtered.
//
// A root that is not a directory yields nothing. Directories that cannot be
// read are skipped. Entries appear in name order.
func ListTree(root string, showHidden bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		w := lister{showHidden: showHidden, seen: make(map[string]bool), yield: yield}
		w.walk(root)
	}
}

type lister struct {
	showHidden bool
	seen       map[string]bool
	yield      func(string) bool
}

// walk returns false once the consumer stops pulling.
func (l *lister) walk(dir string) bool {
	kind, err := Classify(dir)
	if err != nil || !resolvesToDir(kind, dir) {
		return true
	}
	if real, err := realPath(dir); err == nil {
		if l.seen[real] {
			return true
		}
		l.seen[real] = true
	}
	entries, err := sbfs.ReadDir(dir)
	if err != nil {
		return true
	}

	if !l.yield(dir + ":") {
		return false
	}
	if l.showHidden && !(l.yield(".") && l.yield("..")) {
		return false
	}

	var subdirs []string
	for _, e := range entries {
		name := e.Name()
		if l.showHidden || !fileutil.IsHidden(name) {
			if !l.yield(name) {
				return false
			}
		}
		child := join(dir, name)
		if k, err := Classify(child); err == nil && resolvesToDir(k, child) {
			subdirs = append(subdirs, child)
		}
	}
	for _, sub := range subdirs {
		if !l.walk(sub) {
			return false
		}
	}
	return true
}

// join keeps the root exactly as given, so "." lists "./sub".
func join(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
