package colour

import (
	"errors"
	"testing"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "shorthand with hash", input: "#abc", want: "#AABBCC"},
		{name: "shorthand without hash", input: "abc", want: "#AABBCC"},
		{name: "full without hash", input: "FF0000", want: "#FF0000"},
		{name: "full lower case", input: "#1a2b3c", want: "#1A2B3C"},
		{name: "length four passes through", input: "#abcd", want: "#ABCD"},
		{name: "non hex passes through", input: "zzz", want: "#ZZZZZZ"},
		{name: "empty", input: "", want: "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeHex(tt.input); got != tt.want {
				t.Errorf("NormalizeHex(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "shorthand", input: "#abc", want: RGB{R: 0xAA, G: 0xBB, B: 0xCC}},
		{name: "full", input: "ff8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "surrounding whitespace", input: "  #000000\n", want: RGB{}},
		{name: "empty", input: "", wantErr: true},
		{name: "length four", input: "#abcd", wantErr: true},
		{name: "length seven", input: "#abcdef0", wantErr: true},
		{name: "non hex digits", input: "#GGHHII", wantErr: true},
		{name: "non hex shorthand", input: "xyz", wantErr: true},
		{name: "double hash", input: "##abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidHex) {
					t.Errorf("error %v does not wrap ErrInvalidHex", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBlendWithWhite(t *testing.T) {
	tests := []struct {
		name   string
		colour string
		amount float64
		want   string
	}{
		{name: "black no blend", colour: "#000000", amount: 0, want: "#000000"},
		{name: "black full blend", colour: "#000000", amount: 1, want: "#FFFFFF"},
		{name: "black half rounds up", colour: "#000000", amount: 0.7, want: "#B3B3B3"},
		{name: "red quarter", colour: "#FF0000", amount: 0.175, want: "#FF2D2D"},
		{name: "white unchanged", colour: "#FFFFFF", amount: 0.5, want: "#FFFFFF"},
		{name: "amount below range clamps", colour: "#123456", amount: -1, want: "#123456"},
		{name: "amount above range clamps", colour: "#123456", amount: 2, want: "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlendWithWhite(MustParseHex(tt.colour), tt.amount).Hex()
			if got != tt.want {
				t.Errorf("BlendWithWhite(%s, %v) = %s, want %s", tt.colour, tt.amount, got, tt.want)
			}
		})
	}
}

func TestBlendHex(t *testing.T) {
	got, err := BlendHex("#000", 1)
	if err != nil {
		t.Fatalf("BlendHex returned error: %v", err)
	}
	if got != "#FFFFFF" {
		t.Errorf("BlendHex = %s, want #FFFFFF", got)
	}

	if _, err := BlendHex("nope", 0.5); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want string
	}{
		{rgb: RGB{R: 255}, want: "#FF0000"},
		{rgb: RGB{G: 255}, want: "#00FF00"},
		{rgb: RGB{B: 255}, want: "#0000FF"},
		{rgb: RGB{R: 1, G: 2, B: 3}, want: "#010203"},
		{rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}
