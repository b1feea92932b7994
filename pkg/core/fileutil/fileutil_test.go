package fileutil_test

import (
	"testing"

	"github.com/rcarmo/go-minibox/pkg/core/fileutil"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"a.txt", "a.txt", true},
		{"dir/sub", "sub", true},
		{"dir/sub/", "sub", true},
		{"/abs/path", "path", true},
		{"", "", false},
		{"/", "", false},
		{"//", "", false},
		{".", "", false},
		{"..", "", false},
		{"a/..", "", false},
		{"a/.", "", false},
		{".hidden", ".hidden", true},
	}
	for _, tt := range tests {
		got, ok := fileutil.BaseName(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("BaseName(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTargetPath(t *testing.T) {
	if got, ok := fileutil.TargetPath("src/a.txt", "dst", false); !ok || got != "dst" {
		t.Errorf("non-dir target = %q, %v", got, ok)
	}
	if got, ok := fileutil.TargetPath("src/a.txt", "dst", true); !ok || got != "dst/a.txt" {
		t.Errorf("dir target = %q, %v", got, ok)
	}
	if _, ok := fileutil.TargetPath("/", "dst", true); ok {
		t.Error("root source should have no target inside a directory")
	}
}

func TestIsHidden(t *testing.T) {
	if !fileutil.IsHidden(".git") {
		t.Error(".git should be hidden")
	}
	if fileutil.IsHidden("git") {
		t.Error("git should not be hidden")
	}
}
