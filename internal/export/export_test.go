package export

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/jmylchreest/paletta/internal/colour"
)

func testPalette() colour.Palette {
	return colour.GeneratePalette(colour.MustParseHex("#000000"))
}

func TestRenderText(t *testing.T) {
	out, err := Render(FormatText, testPalette(), Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := "#000000\n#2D2D2D\n#595959\n#868686\n#B3B3B3\n"
	if string(out) != want {
		t.Errorf("text = %q, want %q", out, want)
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := Render(FormatJSON, testPalette(), Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var doc PaletteJSON
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Base != "#000000" || len(doc.Colours) != colour.PaletteSize {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestRenderCSS(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		contains []string
	}{
		{
			name:     "default prefix",
			opts:     Options{},
			contains: []string{":root {", "--tint-0: #000000;", "--tint-4: #B3B3B3;"},
		},
		{
			name:     "custom prefix",
			opts:     Options{Prefix: "brand"},
			contains: []string{"--brand-2: #595959;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(FormatCSS, testPalette(), tt.opts)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(string(out), s) {
					t.Errorf("css missing %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestRenderTailwind(t *testing.T) {
	out, err := Render(FormatTailwind, testPalette(), Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, s := range []string{"module.exports", "tint: {", "500: '#000000'", "100: '#B3B3B3'"} {
		if !strings.Contains(string(out), s) {
			t.Errorf("tailwind config missing %q:\n%s", s, out)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	out, err := Render(FormatPNG, testPalette(), Options{SwatchSize: 80})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 80*colour.PaletteSize || b.Dy() != 80 {
		t.Errorf("image size = %dx%d", b.Dx(), b.Dy())
	}

	// Top-left pixel of each swatch carries the swatch colour.
	for i, want := range testPalette() {
		got := colour.ToRGB(img.At(i*80+1, 1))
		if got != want {
			t.Errorf("swatch %d = %s, want %s", i, got.Hex(), want.Hex())
		}
	}
}

func TestRenderPNGTooSmall(t *testing.T) {
	if _, err := Render(FormatPNG, testPalette(), Options{SwatchSize: 10}); err == nil {
		t.Error("expected error for tiny swatches")
	}
}

func TestRenderUnknown(t *testing.T) {
	_, err := Render("svg", testPalette(), Options{})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "supported: css, json, png, tailwind, text") {
		t.Errorf("error should list formats, got: %v", err)
	}
}

func TestExtension(t *testing.T) {
	for _, f := range Formats() {
		if Extension(f) == "" {
			t.Errorf("format %s has no extension", f)
		}
	}
}
