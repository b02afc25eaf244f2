// Package shell renders the zsh and fish integration scripts.
package shell

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/init.zsh templates/init.fish
var templates embed.FS

// Placeholder is replaced by the alias function block.
const Placeholder = "# {ALIAS_BLOCK}"

// DisabledAlias replaces the placeholder when --no-cmd is given.
const DisabledAlias = "# alias disabled by --no-cmd"

// DefaultAlias is the shorthand command name.
const DefaultAlias = "bz"

// UnsupportedShellError reports a shell without an integration template.
type UnsupportedShellError struct {
	Shell string
}

func (e *UnsupportedShellError) Error() string {
	return fmt.Sprintf("unsupported shell: %s (expected zsh or fish)", e.Shell)
}

// Options control the generated script.
type Options struct {
	Alias   string // shorthand name, DefaultAlias when empty
	NoAlias bool   // emit DisabledAlias instead of a function
}

// Supported reports whether shell has a template. Matching is case-insensitive.
func Supported(shell string) bool {
	switch strings.ToLower(shell) {
	case "zsh", "fish":
		return true
	}
	return false
}

// Render returns the integration script for shell.
func Render(shell string, opts Options) (string, error) {
	target := strings.ToLower(shell)
	if !Supported(target) {
		return "", &UnsupportedShellError{Shell: shell}
	}

	data, err := templates.ReadFile("templates/init." + target)
	if err != nil {
		return "", fmt.Errorf("read %s template: %w", target, err)
	}

	block := DisabledAlias
	if !opts.NoAlias {
		name := opts.Alias
		if name == "" {
			name = DefaultAlias
		}
		block = AliasBlock(target, name)
	}

	return strings.Replace(string(data), Placeholder, block, 1), nil
}

// AliasBlock returns the shorthand function definition for shell.
func AliasBlock(shell, name string) string {
	switch shell {
	case "zsh":
		return strings.Join([]string{
			"# bzfm shorthand command",
			fmt.Sprintf("function %s() {", name),
			`  bzfm "$@"`,
			"}",
			"",
		}, "\n")
	case "fish":
		return strings.Join([]string{
			"# bzfm shorthand command",
			fmt.Sprintf("function %s --wraps bzfm", name),
			"  bzfm $argv",
			"end",
			"",
		}, "\n")
	}
	return ""
}
