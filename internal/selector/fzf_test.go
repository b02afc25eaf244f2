package selector

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

// fakeFzf writes an executable shell script standing in for fzf. It records
// its arguments and stdin next to itself.
func fakeFzf(t *testing.T, body string) (binary, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}

	dir = t.TempDir()
	binary = filepath.Join(dir, "fzf")
	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > \"" + filepath.Join(dir, "args") + "\"\n" +
		"cat > \"" + filepath.Join(dir, "stdin") + "\"\n" +
		body + "\n"
	if err := os.WriteFile(binary, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write fake fzf: %v", err)
	}
	return binary, dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestFzf_Args(t *testing.T) {
	f := NewFzf("")

	if f.Binary != DefaultBinary {
		t.Errorf("expected default binary %q, got %q", DefaultBinary, f.Binary)
	}

	base := []string{"--reverse", "--exact", "--no-sort", "--cycle"}
	if got := f.Args(Options{}); !reflect.DeepEqual(got, base) {
		t.Errorf("expected %v, got %v", base, got)
	}

	want := append(append([]string{}, base...), "-m", "-q", "proj")
	if got := f.Args(Options{Multi: true, Query: "proj"}); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFzf_SelectSuccess(t *testing.T) {
	binary, dir := fakeFzf(t, "printf '  /tmp/a  [f]  \\n\\n/tmp/b  [d]\\r\\n'\nexit 0")
	f := NewFzf(binary)

	got, err := f.Select([]string{"/tmp/a  [f]", "/tmp/b  [d]"}, Options{Multi: true, Query: "tmp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []string{"/tmp/a  [f]", "/tmp/b  [d]"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}

	if stdin := readFile(t, filepath.Join(dir, "stdin")); stdin != "/tmp/a  [f]\n/tmp/b  [d]" {
		t.Errorf("unexpected stdin %q", stdin)
	}

	args := strings.Fields(readFile(t, filepath.Join(dir, "args")))
	if want := []string{"--reverse", "--exact", "--no-sort", "--cycle", "-m", "-q", "tmp"}; !reflect.DeepEqual(args, want) {
		t.Errorf("expected args %v, got %v", want, args)
	}
}

func TestFzf_Cancelled(t *testing.T) {
	binary, _ := fakeFzf(t, "exit 130")

	got, err := NewFzf(binary).Select([]string{"/tmp/a  [f]"}, Options{})
	if err != nil {
		t.Fatalf("expected cancel to be a successful empty selection, got: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty selection, got %v", got)
	}
}

func TestFzf_UnexpectedExitCode(t *testing.T) {
	binary, _ := fakeFzf(t, "echo 'boom' >&2\nexit 2")
	var stderr bytes.Buffer
	f := NewFzf(binary)
	f.Stderr = &stderr

	_, err := f.Select([]string{"/tmp/a  [f]"}, Options{})

	var selErr *Error
	if !errors.As(err, &selErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if selErr.Code != 2 {
		t.Errorf("expected code 2, got %d", selErr.Code)
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("expected selector stderr to be passed through, got %q", stderr.String())
	}
}

func TestFzf_KilledBySignal(t *testing.T) {
	binary, _ := fakeFzf(t, "kill -TERM $$")

	_, err := NewFzf(binary).Select([]string{"/tmp/a  [f]"}, Options{})

	var selErr *Error
	if !errors.As(err, &selErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if selErr.Code != -1 {
		t.Errorf("expected code -1, got %d", selErr.Code)
	}
	if selErr.Err == nil || !strings.Contains(err.Error(), "signal") {
		t.Errorf("expected the signal in the error, got %q", err.Error())
	}
}

func TestFzf_LaunchFailure(t *testing.T) {
	f := NewFzf(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := f.Select([]string{"/tmp/a  [f]"}, Options{})

	var selErr *Error
	if !errors.As(err, &selErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if selErr.Code != -1 || selErr.Err == nil {
		t.Errorf("expected launch failure with cause, got %+v", selErr)
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines("a\r\n\n  b  \n\n")
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := splitLines(""); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}
