package testutil

import (
	"testing"
)

// MaxFuzzBytes bounds fuzz inputs so a single case stays fast.
const MaxFuzzBytes = 2048

func ClampBytes(data []byte, max int) []byte {
	if len(data) > max {
		return data[:max]
	}
	return data
}

func ClampString(data string, max int) string {
	if len(data) > max {
		return data[:max]
	}
	return data
}

// FuzzInDir runs an applet inside a fresh directory holding files. It
// returns stdout, stderr and the applet's error; panics fail the test.
func FuzzInDir(t *testing.T, run RunApplet, args []string, input string, files map[string]string) (string, string, error) {
	t.Helper()
	dir := TempDirWithFiles(t, files)
	t.Chdir(dir)
	stdio, out, errBuf := CaptureStdio(input)
	err := run(stdio, args)
	return out.String(), errBuf.String(), err
}
