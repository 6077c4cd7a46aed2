// Package export renders palettes into files other tools can consume.
package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/jmylchreest/paletta/internal/colour"
)

//go:embed *.tmpl
var templates embed.FS

// Format names accepted by Render.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatCSS      = "css"
	FormatTailwind = "tailwind"
	FormatPNG      = "png"
)

// DefaultPrefix names the CSS variables and Tailwind colour group.
const DefaultPrefix = "tint"

// Options tweak the rendered output.
type Options struct {
	// Prefix replaces DefaultPrefix when set.
	Prefix string
	// SwatchSize is the edge length in pixels of each PNG swatch.
	SwatchSize int
}

var renderers = map[string]func(colour.Palette, Options) ([]byte, error){
	FormatText:     renderText,
	FormatJSON:     renderJSON,
	FormatCSS:      templateRenderer("palette.css.tmpl"),
	FormatTailwind: templateRenderer("tailwind.config.js.tmpl"),
	FormatPNG:      renderPNG,
}

// extensions maps formats to a default file extension.
var extensions = map[string]string{
	FormatText:     ".txt",
	FormatJSON:     ".json",
	FormatCSS:      ".css",
	FormatTailwind: ".js",
	FormatPNG:      ".png",
}

// Formats returns the supported format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extension returns the conventional file extension for format.
func Extension(format string) string {
	return extensions[format]
}

// Render produces p in the named format.
func Render(format string, p colour.Palette, opts Options) ([]byte, error) {
	render, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(Formats(), ", "))
	}
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	return render(p, opts)
}

func renderText(p colour.Palette, _ Options) ([]byte, error) {
	return []byte(p.Join("\n") + "\n"), nil
}

// PaletteJSON is the JSON export document.
type PaletteJSON struct {
	Base    string   `json:"base"`
	Colours []string `json:"colours"`
}

func renderJSON(p colour.Palette, _ Options) ([]byte, error) {
	data, err := json.MarshalIndent(PaletteJSON{Base: p.Base().Hex(), Colours: p.ToHex()}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette: %w", err)
	}
	return append(data, '\n'), nil
}

// templateData is passed to the embedded templates.
type templateData struct {
	Base   string
	Prefix string
	Tints  []tint
}

type tint struct {
	Index int
	// Step is the Tailwind shade number: the base is 500, the lightest 100.
	Step int
	Hex  string
}

func newTemplateData(p colour.Palette, opts Options) templateData {
	data := templateData{Base: p.Base().Hex(), Prefix: opts.Prefix}
	for i, c := range p {
		data.Tints = append(data.Tints, tint{
			Index: i,
			Step:  (len(p) - i) * 100,
			Hex:   c.Hex(),
		})
	}
	return data
}

func templateRenderer(name string) func(colour.Palette, Options) ([]byte, error) {
	return func(p colour.Palette, opts Options) ([]byte, error) {
		content, err := templates.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}

		tmpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, newTemplateData(p, opts)); err != nil {
			return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
		}
		return buf.Bytes(), nil
	}
}
