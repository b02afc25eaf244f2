package selector

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
)

// ExitInterrupted is fzf's exit code when the user aborts with ctrl-c or esc.
const ExitInterrupted = 130

// DefaultBinary is the fuzzy finder looked up on $PATH.
const DefaultBinary = "fzf"

// Fzf runs an fzf-compatible binary as a subprocess.
type Fzf struct {
	Binary string
	Stderr io.Writer   // inherits os.Stderr when nil
	Logger *log.Logger // optional debug trace
}

// NewFzf creates a Fzf for binary, falling back to DefaultBinary.
func NewFzf(binary string) *Fzf {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Fzf{Binary: binary}
}

// Args returns the command-line flags for a selection.
func (f *Fzf) Args(opts Options) []string {
	args := []string{"--reverse", "--exact", "--no-sort", "--cycle"}
	if opts.Multi {
		args = append(args, "-m")
	}
	if opts.Query != "" {
		args = append(args, "-q", opts.Query)
	}
	return args
}

// Select writes lines to fzf's stdin, closes it and blocks until fzf exits.
// Exit 0 yields the selected lines, exit 130 an empty selection; any other
// outcome is an *Error.
func (f *Fzf) Select(lines []string, opts Options) ([]string, error) {
	binary := f.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	args := f.Args(opts)

	cmd := exec.Command(binary, args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n"))
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = f.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	f.logf("exec %s %s (%d lines)", binary, strings.Join(args, " "), len(lines))
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &Error{Code: -1, Err: err}
		}

		code := exitErr.ExitCode()
		f.logf("%s exited with code %d", binary, code)
		if code == ExitInterrupted {
			return []string{}, nil
		}
		if code < 0 {
			// killed by a signal; keep it for the message
			return nil, &Error{Code: code, Err: exitErr}
		}
		return nil, &Error{Code: code}
	}

	return splitLines(stdout.String()), nil
}

func (f *Fzf) logf(format string, args ...any) {
	if f.Logger != nil {
		f.Logger.Printf(format, args...)
	}
}

// splitLines splits output on line breaks, trimming and dropping empties.
func splitLines(s string) []string {
	lines := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
