// Package logging builds the diagnostic logger shared by minibox applets.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Formats accepted by Options.Format.
const (
	FormatAuto   = "auto"
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// Options configures New.
type Options struct {
	Level  string // debug, info, warn, error, fatal; empty means warn
	Format string // auto, text, logfmt or json; empty means auto
	Prefix string
}

// New returns a logger writing to w. The auto format picks the styled text
// formatter when w is a terminal and logfmt otherwise.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := log.WarnLevel
	if opts.Level != "" {
		var err error
		level, err = log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}
	formatter, err := parseFormat(opts.Format, w)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:     level,
		Prefix:    opts.Prefix,
		Formatter: formatter,
	})
	if formatter == log.TextFormatter {
		logger.SetStyles(styles())
	}
	return logger, nil
}

func parseFormat(format string, w io.Writer) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatAuto:
		if IsTerminal(w) {
			return log.TextFormatter, nil
		}
		return log.LogfmtFormatter, nil
	case FormatText:
		return log.TextFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q", format)
	}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = s.Levels[log.DebugLevel].Foreground(lipgloss.Color("245"))
	s.Levels[log.InfoLevel] = s.Levels[log.InfoLevel].Foreground(lipgloss.Color("39"))
	s.Levels[log.WarnLevel] = s.Levels[log.WarnLevel].Foreground(lipgloss.Color("214"))
	s.Levels[log.ErrorLevel] = s.Levels[log.ErrorLevel].Foreground(lipgloss.Color("196"))
	s.Prefix = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Bold(true)
	return s
}
