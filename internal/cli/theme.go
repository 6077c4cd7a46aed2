package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/prefs"
)

func newThemeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark|toggle]",
		Short: "Show or change the display theme",
		Long: `Show or change the display theme.

The dark theme shows palettes as a row of labelled swatches; the light theme
lists each colour on its own line. The choice is saved alongside history.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(prefs.ThemeLight), string(prefs.ThemeDark), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if len(args) == 0 {
				fmt.Fprintln(s.out, s.state.Theme)
				return nil
			}

			if args[0] == "toggle" {
				s.state, err = s.app.ToggleTheme(s.state)
			} else {
				var t prefs.Theme
				if t, err = prefs.ParseTheme(args[0]); err != nil {
					return err
				}
				s.state, err = s.app.SetTheme(s.state, t)
			}
			if err != nil {
				return fmt.Errorf("failed to save theme: %w", err)
			}

			s.success("Theme set to %s", s.state.Theme)
			return nil
		},
	}
}
