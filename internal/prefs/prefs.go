// Package prefs persists user display preferences.
package prefs

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/paletta/internal/storage"
)

// ThemeKey is the storage key holding the theme preference.
const ThemeKey = "theme"

// Theme is the display theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme converts s into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("invalid theme: %s (valid: light, dark)", s)
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

func (t Theme) String() string {
	return string(t)
}

// Store reads and writes preferences in a key-value store.
type Store struct {
	kv     storage.Store
	logger hclog.Logger
}

// NewStore binds preferences to kv.
func NewStore(kv storage.Store, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{kv: kv, logger: logger}
}

// Theme returns the saved theme, or light when none is saved or it is unreadable.
func (s *Store) Theme() Theme {
	raw, ok, err := s.kv.Get(ThemeKey)
	if err != nil {
		s.logger.Warn("could not read theme", "error", err)
		return ThemeLight
	}
	if !ok {
		return ThemeLight
	}
	t, err := ParseTheme(raw)
	if err != nil {
		s.logger.Warn("ignoring saved theme", "value", raw)
		return ThemeLight
	}
	return t
}

// SetTheme saves t.
func (s *Store) SetTheme(t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	if err := s.kv.Set(ThemeKey, string(t)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
