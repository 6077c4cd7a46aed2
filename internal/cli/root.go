// Package cli provides the command-line interface for Paletta.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/storage"
	"github.com/jmylchreest/paletta/internal/version"
)

// rootOptions holds the global flags shared by every command.
type rootOptions struct {
	verbose    bool
	quiet      bool
	noColour   bool
	configPath string
	backend    string
	storePath  string
}

// NewRootCmd builds the full command tree. Each call returns independent
// commands and flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "paletta",
		Short: "A tint palette generator",
		Long: `Paletta derives a five-step tint palette from a base colour, shows it in
the terminal and keeps a history of every palette you generate.

Each palette starts at the base colour and blends it towards white in even
steps up to 70%. Palettes can be copied to the clipboard or exported as CSS,
Tailwind config, JSON or PNG.

Examples:
  # Generate a palette from a hex colour
  paletta generate '#3b82f6'

  # Shorthand works too
  paletta generate f80

  # Generate from a random colour
  paletta random

  # Browse and reuse history
  paletta history list
  paletta history copy 0

  # Export the latest palette as CSS variables
  paletta export --format css`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	pf.BoolVar(&opts.noColour, "no-colour", false, "disable coloured output and swatch previews")
	pf.StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/paletta/config.toml)")
	pf.StringVar(&opts.backend, "storage", "", fmt.Sprintf("storage backend override (%s)", joinNames(storage.Backends())))
	pf.StringVar(&opts.storePath, "storage-path", "", "storage file override")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newRandomCmd(opts),
		newHistoryCmd(opts),
		newCopyCmd(opts),
		newExportCmd(opts),
		newThemeCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}
