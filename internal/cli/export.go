package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/colour"
	"github.com/jmylchreest/paletta/internal/export"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		format     string
		output     string
		prefix     string
		size       int
		backup     bool
		flagColour *hexValue
	)

	cmd := &cobra.Command{
		Use:   "export [index]",
		Short: "Export a palette as text, JSON, CSS, Tailwind or PNG",
		Long: fmt.Sprintf(`Export a saved palette, or one built from --colour, in another format.

With no index the newest saved palette is exported. Output goes to stdout
unless --output is set; PNG always needs --output.

Formats: %s

Examples:
  paletta export --format css
  paletta export 2 --format tailwind --prefix brand
  paletta export -c '#10b981' --format png --output swatch.png`, joinNames(export.Formats())),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && flagColour.set {
				return fmt.Errorf("give a history index or --colour, not both")
			}
			if format == export.FormatPNG && output == "" {
				return fmt.Errorf("png output needs --output <file>")
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			var p colour.Palette
			switch {
			case flagColour.set:
				p = colour.GeneratePalette(flagColour.rgb)
			case s.state.History.Len() == 0 && len(args) == 0:
				return fmt.Errorf("no saved palettes to export: run 'paletta generate <colour>' or pass --colour")
			default:
				i := 0
				if len(args) == 1 {
					if i, err = parseIndex(args[0]); err != nil {
						return err
					}
				}
				if p, err = s.state.History.Get(i); err != nil {
					return err
				}
			}

			data, err := export.Render(format, p, export.Options{Prefix: prefix, SwatchSize: size})
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = s.out.Write(data)
				return err
			}

			path, err := expandPath(output)
			if err != nil {
				return err
			}
			if filepath.Ext(path) == "" {
				path += export.Extension(format)
			}
			if err := s.writeFile(path, data, backup); err != nil {
				return err
			}
			s.success("Wrote %s palette to %s", format, path)
			return nil
		},
	}

	flagColour = colourFlag(cmd.Flags(), "export a palette built from this colour instead of history")
	cmd.Flags().StringVarP(&format, "format", "f", export.FormatText, "output format")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file ('-' for stdout)")
	cmd.Flags().StringVar(&prefix, "prefix", export.DefaultPrefix, "CSS variable and Tailwind colour name prefix")
	cmd.Flags().IntVar(&size, "size", 0, "PNG swatch size in pixels (default 96)")
	cmd.Flags().BoolVar(&backup, "backup", true, "keep an existing output file as <file>.backup")
	return cmd
}

// expandPath resolves a leading ~/ to the home directory.
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

// writeFile writes content to path, creating parent directories and
// optionally moving an existing file aside first.
func (s *session) writeFile(path string, content []byte, backup bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if backup {
		if _, err := os.Stat(path); err == nil {
			backupPath := path + ".backup"
			if err := os.Rename(path, backupPath); err != nil {
				s.warn("Could not create backup: %v", err)
			} else {
				s.logger.Info("created backup", "path", backupPath)
			}
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
