package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/atotto/clipboard"
	"github.com/nikbrunner/bzfm/internal/i18n"
	"github.com/nikbrunner/bzfm/internal/picker"
	"github.com/nikbrunner/bzfm/internal/selector"
	"github.com/nikbrunner/bzfm/internal/storage"
)

// DebugEnvVar enables tracing of selector invocations on stderr.
const DebugEnvVar = "BZFM_DEBUG"

// App carries everything resolved once at startup.
type App struct {
	Config    *storage.Config
	Printer   *i18n.Printer
	Selector  selector.Selector // nil picks one from Config.Selector
	Logger    *log.Logger
	Clipboard func(text string) error
}

// NewApp loads the config file, applies environment overrides and resolves
// the locale.
func NewApp() *App {
	var cfgErr error
	cfg := storage.DefaultConfig()
	if path, err := storage.DefaultConfigFilePath(); err != nil {
		cfgErr = err
	} else if loaded, err := storage.LoadConfig(path); err != nil {
		cfgErr = err
	} else {
		cfg = *loaded
	}
	cfg.ApplyEnv()

	logger := log.New(io.Discard, "", 0)
	if os.Getenv(DebugEnvVar) != "" {
		logger = log.New(os.Stderr, "bzfm: ", log.Ltime|log.Lmicroseconds)
	}

	app := &App{
		Config:    &cfg,
		Printer:   i18n.NewPrinter(i18n.Detect(cfg.Locale)),
		Logger:    logger,
		Clipboard: clipboard.WriteAll,
	}
	if cfgErr != nil {
		fmt.Fprintln(os.Stderr, app.Printer.Sprintf(i18n.MsgConfigFailed, cfgErr))
	}
	return app
}

// selector returns the configured Selector.
func (a *App) selector() selector.Selector {
	if a.Selector != nil {
		return a.Selector
	}
	if a.Config.Selector == storage.SelectorBuiltin {
		return picker.Selector{}
	}
	fzf := selector.NewFzf(a.Config.Selector)
	fzf.Logger = a.Logger
	return fzf
}

// openStorage resolves and, if needed, creates the store file.
func (a *App) openStorage() (storage.Storage, error) {
	s, err := storage.OpenStorage()
	if err != nil {
		return nil, err
	}
	a.Logger.Printf("store file %s", s.Path())
	return s, nil
}

// copyToClipboard is best effort: failures only print a warning.
func (a *App) copyToClipboard(w io.Writer, text string) {
	if a.Clipboard == nil {
		return
	}
	if err := a.Clipboard(text); err != nil {
		fmt.Fprintln(w, a.Printer.Sprintf(i18n.MsgClipboardFailed, err))
	}
}
