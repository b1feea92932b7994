package perm_test

import (
	"testing"

	"github.com/rcarmo/go-minibox/pkg/core/perm"
	"github.com/rcarmo/go-minibox/pkg/testutil"
)

func FuzzParse(f *testing.F) {
	f.Add("u+rwx")
	f.Add("a-w")
	f.Add("755")
	f.Add("")
	if testing.Short() {
		f.Skip("fuzzing skipped in short mode")
	}
	f.Fuzz(func(t *testing.T, expr string) {
		expr = testutil.ClampString(expr, testutil.MaxFuzzBytes)
		e, err := perm.Parse(expr)
		if err != nil {
			return
		}
		if d := e.Delta(); d > perm.MaxMode {
			t.Fatalf("delta %o out of range for %q", d, expr)
		}
		if !e.Numeric && e.Delta()&^0o777 != 0 {
			t.Fatalf("symbolic delta %o touches special bits for %q", e.Delta(), expr)
		}
	})
}
