// Package testutil provides shared testing utilities and fixtures.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/rcarmo/go-minibox/pkg/core"
)

// TempFile creates a temp file with content, returns path.
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	return TempFileIn(t, t.TempDir(), name, content)
}

// TempFileIn creates a temp file in a specific directory.
func TempFileIn(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TempDirWithFiles creates a temp directory populated with files.
// The files map keys are relative paths, values are file contents. A key
// ending in "/" creates an empty directory.
func TempDirWithFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(filepath.Join(dir, name), 0o755))
			continue
		}
		TempFileIn(t, dir, name, content)
	}
	return dir
}

// CaptureStdio creates a Stdio with captured output buffers.
// Returns the Stdio, stdout buffer, and stderr buffer.
func CaptureStdio(input string) (*core.Stdio, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	return &core.Stdio{
		In:  strings.NewReader(input),
		Out: out,
		Err: errBuf,
	}, out, errBuf
}

// AssertKind checks err against the wanted kind; a nil kind wants no error.
func AssertKind(t *testing.T, err error, want *errors.Kind) {
	t.Helper()
	if want == nil {
		require.NoError(t, err)
		return
	}
	require.Error(t, err)
	require.True(t, want.Is(err), "error %q is not of kind %q", err, want.Message)
}

// AssertFileContent checks that a file contains expected content.
func AssertFileContent(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, string(got), path)
}

// RunApplet is the applet entry point under test.
type RunApplet = core.RunFunc

// AppletTestCase defines a parameterized test case for applets.
type AppletTestCase struct {
	Name       string                         // Test name
	Args       []string                       // Command line arguments
	Input      string                         // Stdin input
	WantKind   *errors.Kind                   // Expected error kind, nil for success
	WantOut    string                         // Expected stdout (exact match)
	WantNoOut  bool                           // Stdout must be empty
	WantOutSub string                         // Expected stdout substring
	WantErr    string                         // Expected stderr substring
	Files      map[string]string              // Files to create in temp dir
	Setup      func(t *testing.T, dir string) // Optional setup function
	Check      func(t *testing.T, dir string) // Optional post-run check
}

// CaptureAndRun runs an applet with captured stdio and returns the output buffers.
func CaptureAndRun(t *testing.T, run RunApplet, args []string, input string) (*bytes.Buffer, *bytes.Buffer, error) {
	t.Helper()
	stdio, out, errBuf := CaptureStdio(input)
	err := run(stdio, args)
	return out, errBuf, err
}

// RunAppletTests runs a slice of parameterized applet test cases. Each case
// runs inside its own temp directory, so relative paths resolve there.
func RunAppletTests(t *testing.T, run RunApplet, tests []AppletTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			dir := TempDirWithFiles(t, tt.Files)
			t.Chdir(dir)

			if tt.Setup != nil {
				tt.Setup(t, dir)
			}

			stdio, out, errBuf := CaptureStdio(tt.Input)
			err := run(stdio, tt.Args)

			AssertKind(t, err, tt.WantKind)
			if tt.WantOut != "" {
				require.Equal(t, tt.WantOut, out.String())
			}
			if tt.WantNoOut {
				require.Empty(t, out.String())
			}
			if tt.WantOutSub != "" {
				require.Contains(t, out.String(), tt.WantOutSub)
			}
			if tt.WantErr != "" {
				require.Contains(t, errBuf.String(), tt.WantErr)
			}

			if tt.Check != nil {
				tt.Check(t, dir)
			}
		})
	}
}
