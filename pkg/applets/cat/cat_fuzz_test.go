package cat_test

import (
	"testing"

	"github.com/rcarmo/go-minibox/pkg/applets/cat"
	"github.com/rcarmo/go-minibox/pkg/testutil"
)

// FuzzCat checks that file content comes back byte for byte.
func FuzzCat(f *testing.F) {
	f.Add([]byte("sample input"))
	f.Add([]byte(""))
	f.Add([]byte("line1\nline2\nline3\n"))
	f.Add([]byte("\x00binary\xff"))
	if testing.Short() {
		f.Skip("fuzzing skipped in short mode")
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		data = testutil.ClampBytes(data, testutil.MaxFuzzBytes)
		files := map[string]string{"input.txt": string(data)}
		out, _, err := testutil.FuzzInDir(t, cat.Run, []string{"input.txt"}, "", files)
		if err != nil {
			t.Fatalf("cat: %v", err)
		}
		if out != string(data) {
			t.Fatalf("cat = %q, want %q", out, data)
		}
	})
}
