// Package app holds the application state and the operations that change it.
// Handlers take the current State and return the next one; persistence,
// preferences and the clipboard are injected.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/paletta/internal/clipboard"
	"github.com/jmylchreest/paletta/internal/colour"
	"github.com/jmylchreest/paletta/internal/history"
	"github.com/jmylchreest/paletta/internal/prefs"
)

// PaletteSeparator joins hex values when a whole palette is copied.
const PaletteSeparator = ", "

// Persistence loads and saves the palette history.
type Persistence interface {
	// Load never fails; unusable stored data yields an empty history.
	Load() history.History
	Save(history.History) error
}

// ThemeStore loads and saves the theme preference.
type ThemeStore interface {
	Theme() prefs.Theme
	SetTheme(prefs.Theme) error
}

// State is everything the user can see.
type State struct {
	History history.History
	// Current is the palette on display, nil before the first generate or select.
	Current *colour.Palette
	Theme   prefs.Theme
}

// App wires the handlers to their dependencies.
type App struct {
	store     Persistence
	themes    ThemeStore
	clipboard clipboard.Writer
	logger    hclog.Logger
	rand      *rand.Rand
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithRand sets the random source used by Random.
func WithRand(r *rand.Rand) Option {
	return func(a *App) { a.rand = r }
}

// WithClipboard sets the clipboard writer.
func WithClipboard(w clipboard.Writer) Option {
	return func(a *App) { a.clipboard = w }
}

// New creates an App. Without WithClipboard copies always fail.
func New(store Persistence, themes ThemeStore, opts ...Option) *App {
	a := &App{
		store:     store,
		themes:    themes,
		clipboard: clipboard.Disabled{},
		logger:    hclog.NewNullLogger(),
		rand:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load builds the startup state from storage.
func (a *App) Load() State {
	s := State{
		History: a.store.Load(),
		Theme:   prefs.ThemeLight,
	}
	if a.themes != nil {
		s.Theme = a.themes.Theme()
	}
	a.logger.Debug("state loaded", "palettes", s.History.Len(), "theme", s.Theme)
	return s
}

// Generate parses input as the base colour, shows its palette and records it.
func (a *App) Generate(s State, input string) (State, colour.Palette, error) {
	base, err := colour.ParseHex(input)
	if err != nil {
		return s, colour.Palette{}, err
	}
	return a.generate(s, base)
}

// Preview returns the palette for input without touching state or storage.
func (a *App) Preview(input string) (colour.Palette, error) {
	base, err := colour.ParseHex(input)
	if err != nil {
		return colour.Palette{}, err
	}
	return colour.GeneratePalette(base), nil
}

// Random generates and records a palette from a random base colour.
func (a *App) Random(s State) (State, colour.Palette, error) {
	return a.generate(s, colour.RandomRGB(a.rand))
}

// RandomPreview returns a random palette without recording it.
func (a *App) RandomPreview() colour.Palette {
	return colour.GeneratePalette(colour.RandomRGB(a.rand))
}

func (a *App) generate(s State, base colour.RGB) (State, colour.Palette, error) {
	p := colour.GeneratePalette(base)

	next := s
	next.Current = &p
	next.History = s.History.Prepend(p)
	if err := a.store.Save(next.History); err != nil {
		return s, p, err
	}
	a.logger.Debug("palette generated", "base", base.Hex(), "palettes", next.History.Len())
	return next, p, nil
}

// Delete removes the palette at index i and saves the history.
func (a *App) Delete(s State, i int) (State, error) {
	h, err := s.History.Remove(i)
	if err != nil {
		return s, err
	}
	if err := a.store.Save(h); err != nil {
		return s, err
	}
	next := s
	next.History = h
	a.logger.Debug("palette deleted", "index", i, "palettes", h.Len())
	return next, nil
}

// Clear removes every palette and saves the empty history.
func (a *App) Clear(s State) (State, error) {
	if err := a.store.Save(history.History{}); err != nil {
		return s, err
	}
	next := s
	next.History = history.History{}
	return next, nil
}

// Select displays the palette at index i and copies it. The bool reports
// whether the copy succeeded; a failed copy still selects the palette.
func (a *App) Select(ctx context.Context, s State, i int) (State, bool, error) {
	p, err := s.History.Get(i)
	if err != nil {
		return s, false, err
	}
	next := s
	next.Current = &p
	ok := a.clipboard.Copy(ctx, p.Join(PaletteSeparator))
	return next, ok, nil
}

// CopyPalette copies the whole palette p.
func (a *App) CopyPalette(ctx context.Context, p colour.Palette) bool {
	return a.clipboard.Copy(ctx, p.Join(PaletteSeparator))
}

// CopyHex copies a single colour in canonical form.
func (a *App) CopyHex(ctx context.Context, hex string) (bool, error) {
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return false, err
	}
	return a.clipboard.Copy(ctx, rgb.Hex()), nil
}

// SetTheme saves t as the theme.
func (a *App) SetTheme(s State, t prefs.Theme) (State, error) {
	if a.themes == nil {
		return s, fmt.Errorf("theme storage not configured")
	}
	if err := a.themes.SetTheme(t); err != nil {
		return s, err
	}
	next := s
	next.Theme = t
	return next, nil
}

// ToggleTheme switches between light and dark.
func (a *App) ToggleTheme(s State) (State, error) {
	return a.SetTheme(s, s.Theme.Toggle())
}
