package cli

import (
	"github.com/nikbrunner/bzfm/internal/i18n"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the bzfm command tree with configuration resolved
// from the environment.
func NewRootCommand(version string) *cobra.Command {
	return NewApp().Command(version)
}

// Command builds the bzfm command tree for a.
func (a *App) Command(version string) *cobra.Command {
	t := a.Printer.Sprintf

	rootCmd := &cobra.Command{
		Use:     "bzfm",
		Short:   t(i18n.MsgDescription),
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Arguments parsed fine; runtime errors shouldn't print usage
			cmd.SilenceUsage = true
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: t(i18n.MsgCmdList),
		Args:  cobra.NoArgs,
		RunE:  a.RunList,
	}
	addFilterFlags(listCmd, t)

	addCmd := &cobra.Command{
		Use:   "add <paths...>",
		Short: t(i18n.MsgCmdAdd),
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.RunAdd,
	}

	removeCmd := &cobra.Command{
		Use:     "remove <paths...>",
		Aliases: []string{"rm"},
		Short:   t(i18n.MsgCmdRemove),
		Args:    cobra.MinimumNArgs(1),
		RunE:    a.RunRemove,
	}

	selectCmd := &cobra.Command{
		Use:   "select",
		Short: t(i18n.MsgCmdSelect),
		Args:  cobra.NoArgs,
		RunE:  a.RunSelect,
	}
	addFilterFlags(selectCmd, t)
	selectCmd.Flags().Bool("multi", false, t(i18n.MsgOptionMulti))
	selectCmd.Flags().Bool("copy", false, t(i18n.MsgOptionCopy))

	queryCmd := &cobra.Command{
		Use:   "query <pattern>",
		Short: t(i18n.MsgCmdQuery),
		Args:  cobra.ExactArgs(1),
		RunE:  a.RunQuery,
	}
	addFilterFlags(queryCmd, t)
	queryCmd.Flags().Bool("copy", false, t(i18n.MsgOptionCopy))

	fixCmd := &cobra.Command{
		Use:   "fix",
		Short: t(i18n.MsgCmdFix),
		Args:  cobra.NoArgs,
		RunE:  a.RunFix,
	}
	fixCmd.Flags().Bool("dry-run", false, t(i18n.MsgOptionDryRun))

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: t(i18n.MsgCmdClear),
		Args:  cobra.NoArgs,
		RunE:  a.RunClear,
	}

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: t(i18n.MsgCmdEdit),
		Args:  cobra.NoArgs,
		RunE:  a.RunEdit,
	}

	initCmd := &cobra.Command{
		Use:       "init <zsh|fish>",
		Short:     t(i18n.MsgCmdInit),
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"zsh", "fish"},
		RunE:      a.RunInit,
	}
	initCmd.Flags().String("cmd", a.Config.Alias, t(i18n.MsgOptionCmd))
	initCmd.Flags().Bool("no-cmd", false, t(i18n.MsgOptionNoCmd))

	exportCmd := &cobra.Command{
		Use:   "export [path]",
		Short: t(i18n.MsgCmdExport),
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.RunExport,
	}

	importCmd := &cobra.Command{
		Use:   "import <file.html>",
		Short: t(i18n.MsgCmdImport),
		Args:  cobra.ExactArgs(1),
		RunE:  a.RunImport,
	}

	rootCmd.AddCommand(
		initCmd,
		listCmd,
		addCmd,
		removeCmd,
		selectCmd,
		queryCmd,
		fixCmd,
		clearCmd,
		editCmd,
		exportCmd,
		importCmd,
	)

	return rootCmd
}

func addFilterFlags(cmd *cobra.Command, t func(string, ...any) string) {
	cmd.Flags().Bool("files", false, t(i18n.MsgOptionFiles))
	cmd.Flags().Bool("dirs", false, t(i18n.MsgOptionDirs))
}
