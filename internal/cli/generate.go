package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/app"
	"github.com/jmylchreest/paletta/internal/colour"
	"github.com/jmylchreest/paletta/internal/export"
)

// paletteOutput holds flags shared by generate and random.
type paletteOutput struct {
	noSave  bool
	copy    bool
	preview bool
	format  string
}

func (po *paletteOutput) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&po.noSave, "no-save", false, "show the palette without adding it to history")
	cmd.Flags().BoolVar(&po.copy, "copy", false, "copy the palette to the clipboard")
	cmd.Flags().BoolVar(&po.preview, "preview", true, "show colour swatches when the terminal supports them")
	cmd.Flags().StringVarP(&po.format, "format", "f", "", "print in an export format instead (text, json, css, tailwind)")
}

func (po *paletteOutput) validate() error {
	if po.format == export.FormatPNG {
		return fmt.Errorf("png output needs a file: use 'paletta export --format png --output <file>'")
	}
	return nil
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	po := &paletteOutput{}
	var flagColour *hexValue

	cmd := &cobra.Command{
		Use:   "generate [colour]",
		Short: "Generate a tint palette from a base colour",
		Long: `Generate a five-step tint palette from a base colour and add it to history.

The colour may be given as #RGB, RGB, #RRGGBB or RRGGBB, either as an
argument or with --colour.

Examples:
  paletta generate '#3b82f6'
  paletta generate -c abc --copy
  paletta generate 10b981 --format css --no-save`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := po.validate(); err != nil {
				return err
			}

			var input string
			switch {
			case len(args) == 1 && flagColour.set:
				return fmt.Errorf("give the colour as an argument or with --colour, not both")
			case len(args) == 1:
				input = args[0]
			case flagColour.set:
				input = flagColour.String()
			default:
				return fmt.Errorf("a base colour is required")
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			var p colour.Palette
			if po.noSave {
				p, err = s.app.Preview(input)
			} else {
				s.state, p, err = s.app.Generate(s.state, input)
			}
			if err != nil {
				return fmt.Errorf("failed to generate palette: %w", err)
			}

			return s.showGenerated(cmd.Context(), p, po)
		},
	}

	flagColour = colourFlag(cmd.Flags(), "base colour")
	po.register(cmd)
	return cmd
}

func newRandomCmd(opts *rootOptions) *cobra.Command {
	po := &paletteOutput{}
	var seed uint64

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a tint palette from a random colour",
		Long: `Pick a random base colour, generate its tint palette and add it to history.

Pass --seed to get the same colour every time.

Examples:
  paletta random
  paletta random --seed 42 --no-save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := po.validate(); err != nil {
				return err
			}

			var extra []app.Option
			if cmd.Flags().Changed("seed") {
				extra = append(extra, app.WithRand(colour.NewRand(seed)))
			}

			s, err := opts.open(cmd, extra...)
			if err != nil {
				return err
			}
			defer s.Close()

			var p colour.Palette
			if po.noSave {
				p = s.app.RandomPreview()
			} else {
				s.state, p, err = s.app.Random(s.state)
				if err != nil {
					return fmt.Errorf("failed to generate palette: %w", err)
				}
			}

			return s.showGenerated(cmd.Context(), p, po)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	po.register(cmd)
	return cmd
}

// showGenerated prints p, copies it when asked and reports the history size.
func (s *session) showGenerated(ctx context.Context, p colour.Palette, po *paletteOutput) error {
	if po.format != "" {
		data, err := export.Render(po.format, p, export.Options{})
		if err != nil {
			return err
		}
		if _, err := s.out.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if !po.preview {
			s.preview = false
		}
		fmt.Fprintf(s.out, "Palette from %s:\n", colour.ColourString(p.Base(), p.Base().Hex()))
		fmt.Fprint(s.out, s.renderPalette(p))
	}

	if po.copy {
		if s.app.CopyPalette(ctx, p) {
			s.success("Copied palette to clipboard")
		} else {
			s.warn("Could not copy to clipboard")
		}
	}

	if !po.noSave {
		s.success("Saved to history (%d palettes)", s.state.History.Len())
	}
	return nil
}
