package cli

import (
	"fmt"

	"github.com/nikbrunner/bzfm/internal/culler"
	"github.com/nikbrunner/bzfm/internal/i18n"
	"github.com/nikbrunner/bzfm/internal/selector"
	"github.com/nikbrunner/bzfm/internal/storage"
	"github.com/spf13/cobra"
)

// RunList prints the decorated bookmarks, one per line.
func (a *App) RunList(cmd *cobra.Command, args []string) error {
	kind, err := ParseFilterKind(cmd)
	if err != nil {
		return err
	}
	s, err := a.openStorage()
	if err != nil {
		return err
	}
	bookmarks, err := s.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range selector.Lines(selector.Decorate(storage.Filter(bookmarks, kind))) {
		fmt.Fprintln(out, line)
	}
	return nil
}

// RunAdd appends the existing paths among args to the store.
func (a *App) RunAdd(cmd *cobra.Command, args []string) error {
	s, err := a.openStorage()
	if err != nil {
		return err
	}
	bookmarks, err := s.Add(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.Printer.Sprintf(i18n.MsgAddedTo, s.Path()))
	fmt.Fprintln(out, a.Printer.Sprintf(i18n.MsgTotalBookmarks, len(bookmarks)))
	return nil
}

// RunRemove drops args from the store.
func (a *App) RunRemove(cmd *cobra.Command, args []string) error {
	s, err := a.openStorage()
	if err != nil {
		return err
	}
	bookmarks, removed, err := s.Remove(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.Printer.Sprintf(i18n.MsgRemovedEntries, removed))
	fmt.Fprintln(out, a.Printer.Sprintf(i18n.MsgTotalBookmarks, len(bookmarks)))
	return nil
}

// RunFix removes duplicates and paths that no longer exist. With --dry-run
// it only reports them.
func (a *App) RunFix(cmd *cobra.Command, args []string) error {
	dryRun, err := OptionalBoolFlag(cmd, "dry-run", false)
	if err != nil {
		return err
	}
	s, err := a.openStorage()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		bookmarks, err := s.Load()
		if err != nil {
			return err
		}
		stale := culler.Stale(culler.Check(bookmarks))
		for _, r := range stale {
			fmt.Fprintln(out, a.Printer.Sprintf(i18n.MsgStaleEntry, r.Status.String(), r.Path))
		}
		fmt.Fprintln(out, a.Printer.Sprintf(i18n.MsgRemovedEntries, len(stale)))
		return nil
	}

	_, removed, err := s.Cleanup()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, a.Printer.Sprintf(i18n.MsgRemovedEntries, removed))
	return nil
}

// RunClear empties the store.
func (a *App) RunClear(cmd *cobra.Command, args []string) error {
	s, err := a.openStorage()
	if err != nil {
		return err
	}
	if err := s.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Printer.Sprintf(i18n.MsgCleared))
	return nil
}
