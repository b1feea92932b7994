package touch_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/rcarmo/go-minibox/pkg/applets/touch"
	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/testutil"
)

var (
	past   = time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	future = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
)

func times(t *testing.T, path string) (atime, mtime time.Time) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	st := info.Sys().(*syscall.Stat_t)
	return time.Unix(st.Atim.Unix()), info.ModTime()
}

func aged(name string) func(t *testing.T, dir string) {
	return func(t *testing.T, dir string) {
		t.Helper()
		touch.SetNow(t, func() time.Time { return future })
		if err := os.Chtimes(filepath.Join(dir, name), past, past); err != nil {
			t.Fatal(err)
		}
	}
}

func wantTimes(name string, atime, mtime time.Time) func(t *testing.T, dir string) {
	return func(t *testing.T, dir string) {
		t.Helper()
		a, m := times(t, filepath.Join(dir, name))
		if !a.Equal(atime) {
			t.Errorf("atime = %v, want %v", a, atime)
		}
		if !m.Equal(mtime) {
			t.Errorf("mtime = %v, want %v", m, mtime)
		}
	}
}

func TestTouch(t *testing.T) {
	tests := []testutil.AppletTestCase{
		{
			Name:      "creates_file",
			Args:      []string{"new"},
			WantNoOut: true,
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileContent(t, filepath.Join(dir, "new"), "")
			},
		},
		{
			Name:  "keeps_content",
			Args:  []string{"f"},
			Files: map[string]string{"f": "content"},
			Setup: aged("f"),
			Check: func(t *testing.T, dir string) {
				wantTimes("f", future, future)(t, dir)
				testutil.AssertFileContent(t, filepath.Join(dir, "f"), "content")
			},
		},
		{
			Name:  "access_only",
			Args:  []string{"-a", "f"},
			Files: map[string]string{"f": ""},
			Setup: aged("f"),
			Check: wantTimes("f", future, past),
		},
		{
			Name:  "modify_only",
			Args:  []string{"-m", "f"},
			Files: map[string]string{"f": ""},
			Setup: aged("f"),
			Check: wantTimes("f", past, future),
		},
		{
			Name:  "access_and_modify",
			Args:  []string{"-a", "-m", "f"},
			Files: map[string]string{"f": ""},
			Setup: aged("f"),
			Check: wantTimes("f", future, future),
		},
		{
			Name: "no_create",
			Args: []string{"-c", "missing"},
			Check: func(t *testing.T, dir string) {
				if _, err := os.Stat(filepath.Join(dir, "missing")); err == nil {
					t.Fatal("file was created")
				}
			},
		},
		{
			Name:  "no_create_existing",
			Args:  []string{"--no-create", "-m", "f"},
			Files: map[string]string{"f": "x"},
			Setup: aged("f"),
			Check: wantTimes("f", past, future),
		},
		{
			Name: "several",
			Args: []string{"a", "b"},
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileContent(t, filepath.Join(dir, "a"), "")
				testutil.AssertFileContent(t, filepath.Join(dir, "b"), "")
			},
		},
		{
			Name:     "missing_parent",
			Args:     []string{"no/such/file"},
			WantKind: core.ErrNotFound,
		},
		{Name: "no_operands", Args: []string{}, WantKind: core.ErrValidation},
		{Name: "flags_only", Args: []string{"-a"}, WantKind: core.ErrValidation},
		{Name: "unknown_option", Args: []string{"-d", "f"}, WantKind: core.ErrValidation},
	}

	testutil.RunAppletTests(t, touch.Run, tests)
}
