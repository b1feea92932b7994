package perm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/core/perm"
)

func fileWithMode(t *testing.T, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, os.Chmod(path, mode))
	return path
}

func TestSingleCategorySingleCapability(t *testing.T) {
	categories := map[string]uint{"u": 6, "g": 3, "o": 0}
	capabilities := map[string]perm.Mode{"r": 4, "w": 2, "x": 1}

	for cat, shift := range categories {
		for capName, weight := range capabilities {
			e, err := perm.Parse(cat + "+" + capName)
			require.NoError(t, err)
			require.Equal(t, weight<<shift, e.Delta(), "%s+%s", cat, capName)
		}
	}
}

func TestAllSetsEveryDigit(t *testing.T) {
	for _, expr := range []string{"a+rwx", "ua+rwx", "uga+rwx", "aa+rwx"} {
		e, err := perm.Parse(expr)
		require.NoError(t, err)
		require.Equal(t, perm.Mode(0o777), e.Delta(), expr)
	}
}

func TestDuplicatesCollapse(t *testing.T) {
	e, err := perm.Parse("uu+rrw")
	require.NoError(t, err)
	require.Equal(t, perm.Mode(0o600), e.Delta())
}

func TestUnknownCharactersIgnored(t *testing.T) {
	e, err := perm.Parse("u?+z!r")
	require.NoError(t, err)
	require.Equal(t, perm.Mode(0o400), e.Delta())
	require.Equal(t, perm.Add, e.Op)
}

func TestMissingFieldsYieldZero(t *testing.T) {
	for _, expr := range []string{"+rwx", "u+", "", "hello"} {
		e, err := perm.Parse(expr)
		require.NoError(t, err)
		require.Zero(t, e.Delta(), expr)
	}
}

func TestDefaultOperatorIsAdd(t *testing.T) {
	e, err := perm.Parse("gw")
	require.NoError(t, err)
	require.Equal(t, perm.Add, e.Op)
	require.Equal(t, perm.Mode(0o664), e.Apply(0o644, perm.Toggle))
}

func TestAssignOperatorRejected(t *testing.T) {
	_, err := perm.Parse("u=rw")
	require.Error(t, err)
	require.True(t, core.ErrValidation.Is(err))
}

func TestTranslateAdd(t *testing.T) {
	path := fileWithMode(t, 0o644)
	got, err := perm.Translate("u+x", path)
	require.NoError(t, err)
	require.Equal(t, perm.Mode(0o744), got)
}

func TestTranslateSubtractToggles(t *testing.T) {
	path := fileWithMode(t, 0o666)
	got, err := perm.Translate("u-w", path)
	require.NoError(t, err)
	require.Equal(t, perm.Mode(0o466), got)

	// A bit that was clear gets set.
	path = fileWithMode(t, 0o644)
	got, err = perm.Translate("u-x", path)
	require.NoError(t, err)
	require.Equal(t, perm.Mode(0o744), got)
}

func TestTranslateSubtractClear(t *testing.T) {
	path := fileWithMode(t, 0o644)
	got, err := perm.Translate("u-x", path, perm.WithSubtraction(perm.Clear))
	require.NoError(t, err)
	require.Equal(t, perm.Mode(0o644), got)

	got, err = perm.Translate("a-w", path, perm.WithSubtraction(perm.Clear))
	require.NoError(t, err)
	require.Equal(t, perm.Mode(0o444), got)
}

func TestTranslateNumericIgnoresCurrentMode(t *testing.T) {
	path := fileWithMode(t, 0o777)
	got, err := perm.Translate("640", path)
	require.NoError(t, err)
	require.Equal(t, perm.Mode(0o640), got)

	got, err = perm.Translate("0755", filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	require.Equal(t, perm.Mode(0o755), got)
}

func TestTranslateNumericInvalidOctal(t *testing.T) {
	path := fileWithMode(t, 0o644)
	for _, expr := range []string{"8", "789", "77777"} {
		_, err := perm.Translate(expr, path)
		require.Error(t, err, expr)
		require.True(t, core.ErrValidation.Is(err), expr)
	}
}

func TestTranslateMissingPath(t *testing.T) {
	_, err := perm.Translate("u+x", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.True(t, core.ErrLookup.Is(err))
}

func TestParseSubtraction(t *testing.T) {
	sub, err := perm.ParseSubtraction("clear")
	require.NoError(t, err)
	require.Equal(t, perm.Clear, sub)

	sub, err = perm.ParseSubtraction("")
	require.NoError(t, err)
	require.Equal(t, perm.Toggle, sub)

	_, err = perm.ParseSubtraction("bogus")
	require.Error(t, err)
}

func TestModeString(t *testing.T) {
	require.Equal(t, "0644", perm.Mode(0o644).String())
}
