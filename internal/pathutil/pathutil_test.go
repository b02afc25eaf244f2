package pathutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/bzfm/internal/pathutil"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain path unchanged", in: "/etc/hosts", want: "/etc/hosts"},
		{name: "relative path unchanged", in: "docs/notes", want: "docs/notes"},
		{name: "bare tilde", in: "~", want: home},
		{name: "tilde slash", in: "~/projects/bzfm", want: filepath.Join(home, "projects", "bzfm")},
		{name: "other user form untouched", in: "~alice/projects", want: "~alice/projects"},
		{name: "tilde in the middle untouched", in: "/tmp/~/x", want: "/tmp/~/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pathutil.ExpandHome(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolve_RelativeAgainstWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	got, err := pathutil.Resolve("sub/../file.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	want := filepath.Join(wd, "file.txt")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestResolve_HomeShorthand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := pathutil.Resolve("~/notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(home, "notes") {
		t.Errorf("expected %q, got %q", filepath.Join(home, "notes"), got)
	}
}
