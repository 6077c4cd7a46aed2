package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/paletta/internal/app"
	"github.com/jmylchreest/paletta/internal/clipboard"
	"github.com/jmylchreest/paletta/internal/colour"
	"github.com/jmylchreest/paletta/internal/config"
	"github.com/jmylchreest/paletta/internal/history"
	"github.com/jmylchreest/paletta/internal/prefs"
	"github.com/jmylchreest/paletta/internal/storage"
)

// session is everything a command needs once flags and config are resolved.
type session struct {
	cfg    *config.Config
	logger hclog.Logger
	kv     storage.Store
	app    *app.App
	state  app.State

	out    io.Writer
	errOut io.Writer
	quiet  bool
	// preview enables ANSI swatches in human-readable output.
	preview bool
}

// newLogger returns the named root logger. Verbose shows debug output,
// quiet silences everything.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "paletta",
		Output: w,
		Level:  level,
	})
}

// loadConfig resolves the config file and applies flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	path, err := o.resolvedConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if o.backend != "" {
		cfg.Storage.Backend = o.backend
	}
	if o.storePath != "" {
		cfg.Storage.Path = o.storePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// open loads configuration, opens storage and restores application state.
// The caller must Close the session.
func (o *rootOptions) open(cmd *cobra.Command, extra ...app.Option) (*session, error) {
	errOut := cmd.ErrOrStderr()
	logger := newLogger(errOut, o.verbose, o.quiet)

	cfg, err := o.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	storeOpts, err := cfg.StorageOptions()
	if err != nil {
		return nil, err
	}
	logger.Debug("opening storage", "backend", storeOpts.Backend, "path", storeOpts.Path)

	kv, err := storage.Open(storeOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	var clip clipboard.Writer = clipboard.Disabled{}
	if cfg.Clipboard.Enabled {
		clip = clipboard.NewSystem(cfg.Clipboard.Timeout, logger.Named("clipboard"))
	}

	appOpts := []app.Option{
		app.WithLogger(logger.Named("app")),
		app.WithClipboard(clip),
	}
	appOpts = append(appOpts, extra...)

	a := app.New(
		history.NewStore(kv, logger.Named("history")),
		prefs.NewStore(kv, logger.Named("prefs")),
		appOpts...,
	)

	out := cmd.OutOrStdout()
	colourOn := !o.noColour && os.Getenv("NO_COLOR") == "" && isTerminal(out)
	color.NoColor = !colourOn
	colour.DisableColourOutput = !colourOn

	return &session{
		cfg:     cfg,
		logger:  logger,
		kv:      kv,
		app:     a,
		state:   a.Load(),
		out:     out,
		errOut:  errOut,
		quiet:   o.quiet,
		preview: colourOn && cfg.Display.Preview,
	}, nil
}

// Close releases the storage backend.
func (s *session) Close() error {
	return s.kv.Close()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// success prints a status line unless quiet.
func (s *session) success(format string, a ...any) {
	if s.quiet {
		return
	}
	fmt.Fprintln(s.errOut, color.GreenString("✓ ")+fmt.Sprintf(format, a...))
}

// warn prints a warning line unless quiet.
func (s *session) warn(format string, a ...any) {
	if s.quiet {
		return
	}
	fmt.Fprintln(s.errOut, color.YellowString("⚠ ")+fmt.Sprintf(format, a...))
}

// renderPalette returns the human-readable form of p. The dark theme puts
// hex labels on the swatches; the light theme lists them beside each swatch.
func (s *session) renderPalette(p colour.Palette) string {
	width := s.cfg.Display.PreviewWidth
	if s.preview && s.state.Theme.IsDark() {
		return colour.SwatchRow(p, width) + "\n"
	}
	return p.StringWithPreview(s.preview, width)
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
