// Package registry maps command names to applets and turns applet errors
// into process exit codes.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rcarmo/go-minibox/pkg/core"
)

// Applet describes one command.
type Applet struct {
	Name  string
	Usage string
	Run   core.RunFunc

	// FailureCode is the exit code for any error that is not reported as an
	// invalid command.
	FailureCode int
	// ReportInvalid makes validation errors print "Invalid command" to stderr
	// and exit with core.ExitInvalidCommand.
	ReportInvalid bool
	// InvalidAsUnknown treats validation errors like an unknown command:
	// "Invalid command" on stdout and core.ExitInvalidCommand.
	InvalidAsUnknown bool
}

// Registry manages the mapping of command names to applets.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	applets map[string]Applet
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{applets: make(map[string]Applet)}
}

// Register adds an applet.
// Panics if the name is empty, the applet has no Run, or the name is taken.
func (r *Registry) Register(a Applet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.Name == "" {
		panic("registry: cannot register applet with empty name")
	}
	if a.Run == nil {
		panic(fmt.Sprintf("registry: applet %q has no Run", a.Name))
	}
	if _, exists := r.applets[a.Name]; exists {
		panic(fmt.Sprintf("registry: applet %q already registered", a.Name))
	}
	r.applets[a.Name] = a
}

// Lookup retrieves an applet by name.
func (r *Registry) Lookup(name string) (Applet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.applets[name]
	return a, ok
}

// Names returns the names of all registered applets in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.applets))
	for name := range r.applets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exec runs the named applet and returns the exit code. args excludes the
// command name.
func (r *Registry) Exec(stdio *core.Stdio, name string, args []string) int {
	log := stdio.Logger()
	a, ok := r.Lookup(name)
	if !ok {
		log.Debug("unknown command", "name", name)
		stdio.Println(core.InvalidCommandMessage)
		return core.ExitInvalidCommand
	}

	err := a.Run(stdio, args)
	code := a.ExitCode(err)
	if err != nil {
		log.Debug("command failed", "cmd", name, "err", err, "code", code)
		switch {
		case code != core.ExitInvalidCommand:
		case a.InvalidAsUnknown:
			stdio.Println(core.InvalidCommandMessage)
		default:
			stdio.Errorf("%s\n", core.InvalidCommandMessage)
		}
	}
	return code
}

// ExitCode maps the result of a.Run to an exit code.
func (a Applet) ExitCode(err error) int {
	switch {
	case err == nil:
		return core.ExitSuccess
	case (a.ReportInvalid || a.InvalidAsUnknown) && core.ErrValidation.Is(err):
		return core.ExitInvalidCommand
	default:
		return a.FailureCode
	}
}
