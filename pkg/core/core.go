// Package core provides shared functionality for minibox applets.
package core

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Exit codes. Failing commands exit with a small negative code chosen per
// command family; the process status is its low byte (-1 becomes 255).
const (
	ExitSuccess        = 0
	ExitInvalidCommand = -1
	ExitEcho           = -10
	ExitCat            = -20
	ExitChmod          = -25
	ExitMkdir          = -30
	ExitMv             = -40
	ExitLn             = -50
	ExitRmdir          = -60
	ExitRm             = -70
	ExitLs             = -80
	ExitCp             = -90
	ExitTouch          = -100
)

// InvalidCommandMessage is printed for unknown commands and for the
// validation failures of commands that report them.
const InvalidCommandMessage = "Invalid command"

// Stdio holds the standard I/O streams for an applet.
// This allows for easy testing by injecting mock streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	Log *log.Logger
}

var discard = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})

// DefaultStdio returns Stdio configured with os.Stdin, os.Stdout, os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Logger returns the applet logger, or a logger that drops everything.
func (s *Stdio) Logger() *log.Logger {
	if s.Log == nil {
		return discard
	}
	return s.Log
}

// Errorf writes a formatted error message to stderr.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// Printf writes a formatted message to stdout.
func (s *Stdio) Printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

// Print writes a message to stdout.
func (s *Stdio) Print(args ...any) {
	fmt.Fprint(s.Out, args...)
}

// Println writes a message to stdout with a newline.
func (s *Stdio) Println(args ...any) {
	fmt.Fprintln(s.Out, args...)
}

// RunFunc is the shape every applet entry point has.
type RunFunc func(stdio *Stdio, args []string) error
