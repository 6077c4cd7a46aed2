package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/colour"
)

func newCopyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <colour>",
		Short: "Copy a single colour to the clipboard",
		Long: `Copy a single colour to the clipboard in #RRGGBB form.

Examples:
  paletta copy f80
  paletta copy '#3B82F6'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			copied, err := s.app.CopyHex(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rgb := colour.MustParseHex(args[0])
			fmt.Fprintln(s.out, s.cell(rgb))
			if copied {
				s.success("Copied %s to clipboard", rgb.Hex())
			} else {
				s.warn("Could not copy to clipboard")
			}
			return nil
		},
	}
}
