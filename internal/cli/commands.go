package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/bzfm/internal/exporter"
	"github.com/nikbrunner/bzfm/internal/i18n"
	"github.com/nikbrunner/bzfm/internal/importer"
	"github.com/nikbrunner/bzfm/internal/shell"
	"github.com/spf13/cobra"
)

// RunEdit opens the store file in the configured editor.
func (a *App) RunEdit(cmd *cobra.Command, args []string) error {
	s, err := a.openStorage()
	if err != nil {
		return err
	}

	// editor may carry arguments, e.g. "code --wait"
	parts := strings.Fields(a.Config.EditorCommand())
	if len(parts) == 0 {
		return errors.New("no editor configured")
	}
	a.Logger.Printf("editor %q", parts)

	c := exec.Command(parts[0], append(parts[1:], s.Path())...)
	c.Stdin = cmd.InOrStdin()
	c.Stdout = cmd.OutOrStdout()
	c.Stderr = cmd.ErrOrStderr()
	if err := c.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", parts[0], err)
	}
	return nil
}

// RunInit prints the shell integration script.
func (a *App) RunInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !shell.Supported(name) {
		return errors.New(a.Printer.Sprintf(i18n.MsgUnsupportedShell, name))
	}

	alias, err := cmd.Flags().GetString("cmd")
	if err != nil {
		return err
	}
	noAlias, err := OptionalBoolFlag(cmd, "no-cmd", false)
	if err != nil {
		return err
	}

	script, err := shell.Render(name, shell.Options{Alias: alias, NoAlias: noAlias})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}

// RunExport writes the bookmarks as a Netscape bookmark HTML file.
func (a *App) RunExport(cmd *cobra.Command, args []string) error {
	var outputPath string
	if len(args) > 0 {
		outputPath = args[0]
	} else {
		p, err := exporter.DefaultExportPath()
		if err != nil {
			return err
		}
		outputPath = p
	}

	s, err := a.openStorage()
	if err != nil {
		return err
	}
	bookmarks, err := s.Load()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(exporter.ExportHTML(bookmarks)), 0644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Printer.Sprintf(i18n.MsgExported, len(bookmarks), outputPath))
	return nil
}

// RunImport adds the file:// links of an HTML bookmark file to the store.
func (a *App) RunImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	paths, err := importer.ParseHTMLPaths(f)
	if err != nil {
		return err
	}

	s, err := a.openStorage()
	if err != nil {
		return err
	}
	bookmarks, err := s.Add(paths)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.Printer.Sprintf(i18n.MsgImported, len(paths), args[0]))
	fmt.Fprintln(out, a.Printer.Sprintf(i18n.MsgTotalBookmarks, len(bookmarks)))
	return nil
}
