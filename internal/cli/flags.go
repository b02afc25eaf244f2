package cli

import (
	"fmt"

	"github.com/nikbrunner/bzfm/internal/model"
	"github.com/spf13/cobra"
)

// OptionalBoolFlag reads a bool flag, returning def when the command does
// not define it.
func OptionalBoolFlag(cmd *cobra.Command, name string, def bool) (bool, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return def, nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return def, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

// ParseFilterKind reads --files/--dirs.
func ParseFilterKind(cmd *cobra.Command) (model.FilterKind, error) {
	files, err := OptionalBoolFlag(cmd, "files", false)
	if err != nil {
		return model.FilterAll, err
	}
	dirs, err := OptionalBoolFlag(cmd, "dirs", false)
	if err != nil {
		return model.FilterAll, err
	}
	return model.ParseFilterKind(files, dirs), nil
}
