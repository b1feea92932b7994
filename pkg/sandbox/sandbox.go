// Package sandbox restricts which paths minibox applets may touch.
// The guard is disabled unless Configure is called; pkg/core/fs consults it
// before every filesystem primitive.
package sandbox

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Sandbox errors.
var (
	ErrAccessDenied = errors.New("access denied: path not in sandbox")
	ErrReadOnly     = errors.New("write access denied: path is read-only")
)

// Access is the set of operations a rule grants.
type Access uint8

const (
	AccessNone Access = 0
	AccessRead Access = 1 << (iota - 1)
	AccessWrite
)

// Rule grants access to a directory tree.
type Rule struct {
	Root   string
	Access Access
}

// Config describes the rules to install.
type Config struct {
	Rules []Rule
	// AllowCwd adds a rule for the working directory at configure time.
	AllowCwd bool
	// CwdAccess defaults to read/write.
	CwdAccess Access
}

type guard struct {
	mu      sync.RWMutex
	rules   []Rule
	enabled bool
}

var global = &guard{}

// Configure installs cfg and enables the guard.
func Configure(cfg Config) error {
	var rules []Rule
	if cfg.AllowCwd {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		access := cfg.CwdAccess
		if access == AccessNone {
			access = AccessRead | AccessWrite
		}
		rules = append(rules, Rule{Root: cwd, Access: access})
	}
	for _, r := range cfg.Rules {
		abs, err := filepath.Abs(r.Root)
		if err != nil {
			return err
		}
		rules = append(rules, Rule{Root: filepath.Clean(abs), Access: r.Access})
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	global.rules = rules
	global.enabled = true
	return nil
}

// Disable turns the guard off and forgets its rules.
func Disable() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.rules = nil
	global.enabled = false
}

// Enabled reports whether the guard is active.
func Enabled() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.enabled
}

// Check returns nil when path may be used with the requested access.
// Rules are matched on whole path components, so /tmp/ab is not inside /tmp/a.
func Check(path string, want Access) error {
	global.mu.RLock()
	defer global.mu.RUnlock()

	if !global.enabled {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return ErrAccessDenied
	}
	abs = filepath.Clean(abs)

	readOnlyHit := false
	for _, r := range global.rules {
		if !within(abs, r.Root) {
			continue
		}
		if r.Access&want == want {
			return nil
		}
		if want&AccessWrite != 0 && r.Access&AccessWrite == 0 {
			readOnlyHit = true
		}
	}
	if readOnlyHit {
		return ErrReadOnly
	}
	return ErrAccessDenied
}

func within(path, root string) bool {
	if path == root || root == string(filepath.Separator) {
		return true
	}
	rest, ok := strings.CutPrefix(path, root)
	return ok && strings.HasPrefix(rest, string(filepath.Separator))
}
