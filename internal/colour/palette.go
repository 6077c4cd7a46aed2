// Package colour provides hex colour handling and tint palette generation.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strings"
)

// PaletteSize is the number of tints in a palette.
const PaletteSize = 5

// MaxTint is the white-blend ratio of the lightest tint.
const MaxTint = 0.7

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the canonical hex form (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color so palettes can be drawn directly.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}.RGBA()
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Palette is an ordered set of tints derived from one base colour.
// Index 0 is the base itself, index 4 the lightest tint.
type Palette [PaletteSize]RGB

// TintAmount returns the white-blend ratio used for palette index i.
func TintAmount(i int) float64 {
	return float64(i) / float64(PaletteSize-1) * MaxTint
}

// GeneratePalette derives a palette from base by blending it with white at
// evenly spaced ratios between 0 and MaxTint.
func GeneratePalette(base RGB) Palette {
	var p Palette
	for i := range p {
		p[i] = BlendWithWhite(base, TintAmount(i))
	}
	return p
}

// Base returns the colour the palette was generated from.
func (p Palette) Base() RGB {
	return p[0]
}

// ToHex converts the palette colours to hex strings.
func (p Palette) ToHex() []string {
	hexColours := make([]string, len(p))
	for i, c := range p {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// Join returns the hex values joined with sep.
func (p Palette) Join(sep string) string {
	return strings.Join(p.ToHex(), sep)
}

// PaletteFromHex builds a palette from exactly PaletteSize hex strings.
func PaletteFromHex(hexColours []string) (Palette, error) {
	var p Palette
	if len(hexColours) != PaletteSize {
		return p, fmt.Errorf("palette must have %d colours, got %d", PaletteSize, len(hexColours))
	}
	for i, h := range hexColours {
		rgb, err := ParseHex(h)
		if err != nil {
			return p, fmt.Errorf("colour %d: %w", i, err)
		}
		p[i] = rgb
	}
	return p, nil
}

// MarshalJSON encodes the palette as an array of hex strings.
func (p Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToHex())
}

// UnmarshalJSON decodes an array of exactly PaletteSize hex strings.
func (p *Palette) UnmarshalJSON(data []byte) error {
	var hexColours []string
	if err := json.Unmarshal(data, &hexColours); err != nil {
		return err
	}
	parsed, err := PaletteFromHex(hexColours)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// String returns a human-readable string representation of the palette.
func (p Palette) String() string {
	return p.StringWithPreview(false, defaultWidth)
}

// StringWithPreview renders one line per tint, optionally with a colour block.
func (p Palette) StringWithPreview(preview bool, width int) string {
	var b strings.Builder
	for i, c := range p {
		label := fmt.Sprintf("%3.0f%%", TintAmount(i)*100)
		if preview {
			fmt.Fprintf(&b, "  %d: %s\n", i, FormatColourWithLabel(c, label, width))
		} else {
			fmt.Fprintf(&b, "  %d: %-6s %s (%s)\n", i, label, c.Hex(), c.String())
		}
	}
	return b.String()
}

// All returns an iterator over the palette's colours.
func (p Palette) All() func(func(int, RGB) bool) {
	return func(yield func(int, RGB) bool) {
		for i, c := range p {
			if !yield(i, c) {
				return
			}
		}
	}
}
