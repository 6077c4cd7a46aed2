package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/colour"
	"github.com/jmylchreest/paletta/internal/export"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"h"},
		Short:   "Browse and manage saved palettes",
		Long: `Browse and manage saved palettes. The newest palette is at index 0.

Examples:
  paletta history list
  paletta history show 2
  paletta history copy 0
  paletta history delete 3
  paletta history clear`,
	}

	cmd.AddCommand(
		newHistoryListCmd(opts),
		newHistoryShowCmd(opts),
		newHistoryCopyCmd(opts),
		newHistoryDeleteCmd(opts),
		newHistoryClearCmd(opts),
	)
	return cmd
}

func newHistoryListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved palettes, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if asJSON {
				data, err := json.MarshalIndent(s.state.History.Hex(), "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(s.out, string(data))
				return err
			}

			if s.state.History.Len() == 0 {
				fmt.Fprintln(s.out, "No saved palettes. Run 'paletta generate <colour>' to create one.")
				return nil
			}

			table := NewTable([]string{"#", "Base", "Tints"})
			for i, p := range s.state.History {
				table.AddRow([]string{strconv.Itoa(i), s.cell(p.Base()), s.tintCells(p)})
			}
			fmt.Fprint(s.out, table.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored history as JSON")
	return cmd
}

func newHistoryShowCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <index>",
		Short: "Show one saved palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := s.state.History.Get(i)
			if err != nil {
				return err
			}

			if format != "" {
				if format == export.FormatPNG {
					return fmt.Errorf("png output needs a file: use 'paletta export %d --format png --output <file>'", i)
				}
				data, err := export.Render(format, p, export.Options{})
				if err != nil {
					return err
				}
				_, err = s.out.Write(data)
				return err
			}

			fmt.Fprintf(s.out, "Palette %d:\n", i)
			fmt.Fprint(s.out, s.renderPalette(p))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "print in an export format instead (text, json, css, tailwind)")
	return cmd
}

func newHistoryCopyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <index>",
		Short: "Show a saved palette and copy it to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			next, copied, err := s.app.Select(cmd.Context(), s.state, i)
			if err != nil {
				return err
			}
			s.state = next

			fmt.Fprint(s.out, s.renderPalette(*s.state.Current))
			if copied {
				s.success("Copied palette %d to clipboard", i)
			} else {
				s.warn("Could not copy to clipboard")
			}
			return nil
		},
	}
}

func newHistoryDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <index>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved palette",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			removed, err := s.state.History.Get(i)
			if err != nil {
				return err
			}
			if s.state, err = s.app.Delete(s.state, i); err != nil {
				return fmt.Errorf("failed to delete palette: %w", err)
			}

			s.success("Deleted palette %d (%s), %d remaining", i, removed.Base().Hex(), s.state.History.Len())
			return nil
		},
	}
}

func newHistoryClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			n := s.state.History.Len()
			if s.state, err = s.app.Clear(s.state); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			s.success("Cleared %d palettes", n)
			return nil
		},
	}
}

func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid palette index %q: must be a number", arg)
	}
	return i, nil
}

// cell renders one colour for a table cell.
func (s *session) cell(c colour.RGB) string {
	if !s.preview {
		return c.Hex()
	}
	return colour.FormatColourWithPreview(c, 2)
}

// tintCells renders the tints of p, skipping the base.
func (s *session) tintCells(p colour.Palette) string {
	parts := make([]string, 0, len(p)-1)
	for _, c := range p[1:] {
		parts = append(parts, s.cell(c))
	}
	return strings.Join(parts, " ")
}
