package colour

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidHex is returned when a string cannot be read as a hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// InvalidHexError describes why a hex colour was rejected.
type InvalidHexError struct {
	Input  string
	Reason string
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("invalid hex colour %q: %s", e.Input, e.Reason)
}

func (e *InvalidHexError) Unwrap() error {
	return ErrInvalidHex
}

// NormalizeHex converts a hex colour string to its canonical "#RRGGBB" form.
// A leading '#' is optional and 3-digit shorthand is expanded ("abc" becomes
// "#AABBCC"). The input is not validated: anything other than 3 characters is
// only upper-cased and prefixed. Use ParseHex when validation is required.
func NormalizeHex(input string) string {
	hex := strings.TrimPrefix(input, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return "#" + strings.ToUpper(hex)
}

// ParseHex normalizes and validates a hex colour string.
// Accepts "#RGB", "RGB", "#RRGGBB" and "RRGGBB" in any case.
func ParseHex(input string) (RGB, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return RGB{}, &InvalidHexError{Input: input, Reason: "empty"}
	}

	digits := strings.TrimPrefix(trimmed, "#")
	if len(digits) != 3 && len(digits) != 6 {
		return RGB{}, &InvalidHexError{Input: input, Reason: fmt.Sprintf("expected 3 or 6 hex digits, got %d", len(digits))}
	}

	hex := NormalizeHex(trimmed)[1:]
	var out [3]uint8
	for i := range out {
		hi, ok1 := hexNibble(hex[i*2])
		lo, ok2 := hexNibble(hex[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}, &InvalidHexError{Input: input, Reason: "contains non-hex characters"}
		}
		out[i] = hi<<4 | lo
	}

	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// MustParseHex is like ParseHex but panics on error. Intended for constants.
func MustParseHex(input string) RGB {
	rgb, err := ParseHex(input)
	if err != nil {
		panic(err)
	}
	return rgb
}

// IsValidHex reports whether input parses as a hex colour.
func IsValidHex(input string) bool {
	_, err := ParseHex(input)
	return err == nil
}

// hexNibble decodes a single upper-case hex digit.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// BlendWithWhite moves each channel of c towards 255 by amount.
// amount is clamped to [0, 1]; 0 returns c unchanged and 1 returns white.
func BlendWithWhite(c RGB, amount float64) RGB {
	amount = math.Max(0, math.Min(1, amount))
	blend := func(ch uint8) uint8 {
		v := float64(ch)
		// Half-up rounding; all values are non-negative.
		return uint8(math.Floor(v + (255-v)*amount + 0.5))
	}
	return RGB{R: blend(c.R), G: blend(c.G), B: blend(c.B)}
}

// BlendHex parses hex, blends it with white and returns the canonical result.
func BlendHex(hex string, amount float64) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return BlendWithWhite(rgb, amount).Hex(), nil
}
