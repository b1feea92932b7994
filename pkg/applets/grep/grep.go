// Package grep implements the grep command.
package grep

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/fs"
)

// Options holds grep command options.
type Options struct {
	IgnoreCase bool // -i with POSIX flags: case-insensitive matching
	Invert     bool // -v, and -i without POSIX flags: print lines that do not match
	LineNumber bool // -n: prefix lines with their number
}

// Command is grep bound to a flag dialect.
type Command struct {
	// POSIX makes -i mean ignore-case. Otherwise -i inverts the match, which
	// is what the utility has always done.
	POSIX bool
}

// Run executes grep with the historical flag meanings.
func Run(stdio *core.Stdio, args []string) error {
	return Command{}.Run(stdio, args)
}

// Run prints the lines of each FILE that match PATTERN.
//
//	grep [-i] [-v] [-n] PATTERN FILE...
//
// PATTERN is an RE2 regular expression. Files that cannot be opened are
// skipped. With several files every line is prefixed by its file name.
func (c Command) Run(stdio *core.Stdio, args []string) error {
	opts, rest, err := c.parseArgs(args)
	if err != nil {
		return err
	}
	if len(rest) < 2 {
		return core.Validation("grep", "invalid operation")
	}

	pattern := rest[0]
	if opts.IgnoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return core.Validation("grep", err.Error())
	}

	files := rest[1:]
	for _, file := range files {
		prefix := ""
		if len(files) > 1 {
			prefix = file + ":"
		}
		if err := grepFile(stdio, re, file, prefix, opts); err != nil {
			return err
		}
	}
	return nil
}

func (c Command) parseArgs(args []string) (Options, []string, error) {
	var opts Options
	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if !strings.HasPrefix(arg, "-") || len(arg) < 2 {
			break
		}
		for _, ch := range arg[1:] {
			switch ch {
			case 'i':
				if c.POSIX {
					opts.IgnoreCase = true
				} else {
					opts.Invert = true
				}
			case 'v':
				opts.Invert = true
			case 'n':
				opts.LineNumber = true
			default:
				return opts, nil, core.Validation("grep", "invalid option -- '"+string(ch)+"'")
			}
		}
	}
	return opts, args[i:], nil
}

func grepFile(stdio *core.Stdio, re *regexp.Regexp, path, prefix string, opts Options) error {
	f, err := fs.Open(path)
	if err != nil {
		stdio.Logger().Debug("skipping unreadable file", "path", path, "err", err)
		return nil
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for lineNum := 1; ; lineNum++ {
		line, err := r.ReadString('\n')
		if line != "" {
			text := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if re.MatchString(text) != opts.Invert {
				if opts.LineNumber {
					stdio.Printf("%s%d:%s\n", prefix, lineNum, text)
				} else {
					stdio.Printf("%s%s\n", prefix, text)
				}
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return core.IO("read", path, err)
		}
	}
}
