package colour

import (
	"encoding/json"
	"image/color"
	"strings"
	"testing"
)

func TestGeneratePalette(t *testing.T) {
	tests := []struct {
		name string
		base string
		want []string
	}{
		{
			name: "black",
			base: "#000000",
			want: []string{"#000000", "#2D2D2D", "#595959", "#868686", "#B3B3B3"},
		},
		{
			name: "red",
			base: "#FF0000",
			want: []string{"#FF0000", "#FF2D2D", "#FF5959", "#FF8686", "#FFB3B3"},
		},
		{
			name: "white",
			base: "#FFFFFF",
			want: []string{"#FFFFFF", "#FFFFFF", "#FFFFFF", "#FFFFFF", "#FFFFFF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeneratePalette(MustParseHex(tt.base)).ToHex()
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("GeneratePalette(%s) = %v, want %v", tt.base, got, tt.want)
			}
		})
	}
}

func TestGeneratePaletteProperties(t *testing.T) {
	r := NewRand(42)
	bases := []RGB{Black, White, {R: 1, G: 127, B: 254}}
	for range 200 {
		bases = append(bases, RGB{R: uint8(r.IntN(256)), G: uint8(r.IntN(256)), B: uint8(r.IntN(256))})
	}

	for _, base := range bases {
		p := GeneratePalette(base)

		if len(p.ToHex()) != PaletteSize {
			t.Fatalf("palette for %s has %d entries", base.Hex(), len(p.ToHex()))
		}
		if p[0] != BlendWithWhite(base, 0) {
			t.Errorf("entry 0 for %s = %s, want base", base.Hex(), p[0].Hex())
		}
		for i := 1; i < len(p); i++ {
			prev, cur := p[i-1], p[i]
			if cur.R < prev.R || cur.G < prev.G || cur.B < prev.B {
				t.Errorf("palette for %s not monotonic at %d: %s -> %s", base.Hex(), i, prev.Hex(), cur.Hex())
			}
		}
	}
}

func TestTintAmount(t *testing.T) {
	want := []float64{0, 0.175, 0.35, 0.525, 0.7}
	for i, w := range want {
		if got := TintAmount(i); got < w-1e-9 || got > w+1e-9 {
			t.Errorf("TintAmount(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestPaletteJSON(t *testing.T) {
	p := GeneratePalette(MustParseHex("#336699"))

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.HasPrefix(string(data), `["#336699",`) {
		t.Errorf("unexpected JSON: %s", data)
	}

	var decoded Palette
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded != p {
		t.Errorf("decoded = %v, want %v", decoded.ToHex(), p.ToHex())
	}
}

func TestPaletteUnmarshalRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "too short", data: `["#000000","#111111"]`},
		{name: "too long", data: `["#000000","#000000","#000000","#000000","#000000","#000000"]`},
		{name: "bad colour", data: `["#000000","#000000","nope","#000000","#000000"]`},
		{name: "not an array", data: `{"colours":[]}`},
		{name: "numbers", data: `[1,2,3,4,5]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Palette
			if err := json.Unmarshal([]byte(tt.data), &p); err == nil {
				t.Errorf("expected error for %s", tt.data)
			}
		})
	}
}

func TestPaletteJoin(t *testing.T) {
	p := GeneratePalette(Black)
	want := "#000000, #2D2D2D, #595959, #868686, #B3B3B3"
	if got := p.Join(", "); got != want {
		t.Errorf("Join = %q, want %q", got, want)
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{name: "red", color: color.RGBA{R: 255, A: 255}, want: RGB{R: 255}},
		{name: "white", color: color.White, want: White},
		{name: "black", color: color.Black, want: Black},
		{name: "rgb roundtrip", color: RGB{R: 10, G: 20, B: 30}, want: RGB{R: 10, G: 20, B: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGB(tt.color); got != tt.want {
				t.Errorf("ToRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPaletteString(t *testing.T) {
	out := GeneratePalette(Black).String()
	if strings.Count(out, "\n") != PaletteSize {
		t.Errorf("expected %d lines, got %q", PaletteSize, out)
	}
	if !strings.Contains(out, "#B3B3B3") {
		t.Errorf("expected lightest tint in output, got %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Error("plain String() should not contain ANSI escapes")
	}
}

func TestRandomRGBDeterministic(t *testing.T) {
	a := RandomRGB(NewRand(7))
	b := RandomRGB(NewRand(7))
	if a != b {
		t.Errorf("same seed produced %s and %s", a.Hex(), b.Hex())
	}
}

func TestReadableTextColour(t *testing.T) {
	if got := ReadableTextColour(White); got != Black {
		t.Errorf("text on white = %s, want black", got.Hex())
	}
	if got := ReadableTextColour(Black); got != White {
		t.Errorf("text on black = %s, want white", got.Hex())
	}
}

func TestPreviewDisabled(t *testing.T) {
	DisableColourOutput = true
	defer func() { DisableColourOutput = false }()

	if got := ColourPreviewWithText(White, "#FFFFFF", 9); strings.Contains(got, "\033[") {
		t.Errorf("expected plain text, got %q", got)
	}
}
