package cli

import (
	"fmt"
	"strings"

	"github.com/nikbrunner/bzfm/internal/selector"
	"github.com/spf13/cobra"
)

// RunSelect lets the user pick bookmarks and prints each chosen path.
func (a *App) RunSelect(cmd *cobra.Command, args []string) error {
	multi, err := OptionalBoolFlag(cmd, "multi", false)
	if err != nil {
		return err
	}
	paths, err := a.selectPaths(cmd, selector.Options{Multi: multi})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	if len(paths) > 0 {
		if err := a.maybeCopy(cmd, strings.Join(paths, "\n")); err != nil {
			return err
		}
	}
	return nil
}

// RunQuery opens the selector pre-filled with a pattern and prints the first
// chosen path.
func (a *App) RunQuery(cmd *cobra.Command, args []string) error {
	paths, err := a.selectPaths(cmd, selector.Options{Query: args[0]})
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), paths[0])
	return a.maybeCopy(cmd, paths[0])
}

func (a *App) selectPaths(cmd *cobra.Command, opts selector.Options) ([]string, error) {
	kind, err := ParseFilterKind(cmd)
	if err != nil {
		return nil, err
	}
	s, err := a.openStorage()
	if err != nil {
		return nil, err
	}
	bookmarks, err := s.Load()
	if err != nil {
		return nil, err
	}
	return selector.SelectFromBookmarks(a.selector(), bookmarks, kind, opts)
}

func (a *App) maybeCopy(cmd *cobra.Command, text string) error {
	copyFlag, err := OptionalBoolFlag(cmd, "copy", false)
	if err != nil {
		return err
	}
	if copyFlag {
		a.copyToClipboard(cmd.ErrOrStderr(), text)
	}
	return nil
}
