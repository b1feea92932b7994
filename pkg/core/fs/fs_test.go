package fs_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcarmo/go-minibox/pkg/core/fs"
	"github.com/rcarmo/go-minibox/pkg/sandbox"
)

func TestRemoveAllReportsMissingPath(t *testing.T) {
	err := fs.RemoveAll(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, iofs.ErrNotExist)
}

func TestCopyFileSameFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	require.NoError(t, os.WriteFile(src, []byte("keep"), 0o644))
	link := filepath.Join(dir, "b")
	require.NoError(t, os.Symlink(src, link))

	err := fs.CopyFile(src, link)
	require.True(t, errors.Is(err, fs.ErrSameFile))

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, "keep", string(data))
}

func TestCopyFileChecksDestinationAgainstSandbox(t *testing.T) {
	root := t.TempDir()
	inside := filepath.Join(root, "inside")
	outside := filepath.Join(root, "outside")
	require.NoError(t, os.Mkdir(inside, 0o755))
	require.NoError(t, os.Mkdir(outside, 0o755))
	src := filepath.Join(inside, "a")
	require.NoError(t, os.WriteFile(src, []byte("keep"), 0o644))
	dst := filepath.Join(outside, "a")
	require.NoError(t, os.Link(src, dst))

	require.NoError(t, sandbox.Configure(sandbox.Config{
		Rules: []sandbox.Rule{{Root: inside, Access: sandbox.AccessRead | sandbox.AccessWrite}},
	}))
	t.Cleanup(sandbox.Disable)

	err := fs.CopyFile(src, dst)
	require.ErrorIs(t, err, sandbox.ErrAccessDenied)
	require.False(t, errors.Is(err, fs.ErrSameFile))
}

func TestCopyFileKeepsExistingMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old content"), 0o600))

	require.NoError(t, fs.CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
	info, err := os.Stat(dst)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestModeAndChmodKeepSpecialBits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	require.NoError(t, fs.Chmod(path, 0o4755))
	mode, err := fs.Mode(path)
	require.NoError(t, err)
	require.Equal(t, uint32(0o4755), mode)

	_, err = fs.Mode(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, iofs.ErrNotExist)
}
