package grep_test

import (
	"testing"

	"github.com/rcarmo/go-minibox/pkg/applets/grep"
	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/testutil"
)

func TestGrep(t *testing.T) {
	input := map[string]string{"input": "one\nTwo\nthree\ntwo\n"}
	tests := []testutil.AppletTestCase{
		{
			Name:    "literal",
			Args:    []string{"two", "input"},
			Files:   input,
			WantOut: "two\n",
		},
		{
			Name:    "regex",
			Args:    []string{"^t", "input"},
			Files:   input,
			WantOut: "three\ntwo\n",
		},
		{
			Name:    "i_inverts",
			Args:    []string{"-i", "foo", "input"},
			Files:   map[string]string{"input": "foo\nbar\nFOO\n"},
			WantOut: "bar\nFOO\n",
		},
		{
			Name:    "invert",
			Args:    []string{"-v", "t", "input"},
			Files:   input,
			WantOut: "one\nTwo\n",
		},
		{
			Name:    "line_numbers",
			Args:    []string{"-n", "o", "input"},
			Files:   input,
			WantOut: "1:one\n2:Two\n4:two\n",
		},
		{
			Name:    "combined_flags",
			Args:    []string{"-vn", "o", "input"},
			Files:   input,
			WantOut: "3:three\n",
		},
		{
			Name:    "several_files",
			Args:    []string{"x", "a", "b"},
			Files:   map[string]string{"a": "x1\ny\n", "b": "x2\n"},
			WantOut: "a:x1\nb:x2\n",
		},
		{
			Name:    "crlf_and_no_trailing_newline",
			Args:    []string{"b", "input"},
			Files:   map[string]string{"input": "a\r\nb\r\nab"},
			WantOut: "b\nab\n",
		},
		{
			Name:      "no_match",
			Args:      []string{"zzz", "input"},
			Files:     input,
			WantNoOut: true,
		},
		{
			Name:    "unopenable_file_skipped",
			Args:    []string{"one", "missing", "input"},
			Files:   input,
			WantOut: "input:one\n",
		},
		{
			Name:    "double_dash",
			Args:    []string{"--", "-x", "input"},
			Files:   map[string]string{"input": "a-x\nb\n"},
			WantOut: "a-x\n",
		},
		{Name: "no_args", Args: []string{}, WantKind: core.ErrValidation},
		{Name: "pattern_only", Args: []string{"x"}, WantKind: core.ErrValidation},
		{Name: "invalid_pattern", Args: []string{"(", "input"}, Files: input, WantKind: core.ErrValidation},
		{Name: "invalid_option", Args: []string{"-z", "x", "input"}, Files: input, WantKind: core.ErrValidation},
	}

	testutil.RunAppletTests(t, grep.Run, tests)
}

func TestGrepPOSIX(t *testing.T) {
	input := map[string]string{"input": "foo\nbar\nFOO\n"}
	tests := []testutil.AppletTestCase{
		{
			Name:    "ignore_case",
			Args:    []string{"-i", "foo", "input"},
			Files:   input,
			WantOut: "foo\nFOO\n",
		},
		{
			Name:    "ignore_case_inverted",
			Args:    []string{"-iv", "foo", "input"},
			Files:   input,
			WantOut: "bar\n",
		},
		{
			Name:    "case_sensitive_by_default",
			Args:    []string{"foo", "input"},
			Files:   input,
			WantOut: "foo\n",
		},
	}

	testutil.RunAppletTests(t, grep.Command{POSIX: true}.Run, tests)
}
