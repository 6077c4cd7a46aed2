package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput turns every preview helper into plain text.
var DisableColourOutput = false

// ColourPreview returns an ANSI-coloured block for a colour.
// Width specifies how many characters wide the block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	block := strings.Repeat(" ", width)
	if DisableColourOutput {
		return block
	}

	return bg(c) + block + ansiReset
}

// ColourPreviewWithText returns a colour block with text centred on it.
// The text colour is black or white, whichever contrasts more.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}
	if DisableColourOutput {
		return displayText
	}

	return bg(c) + fg(ReadableTextColour(c)) + displayText + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(rgb, width), rgb.Hex())
}

// FormatColourWithLabel formats a colour with a label and preview.
func FormatColourWithLabel(rgb RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-6s %s", ColourPreview(rgb, width), label, rgb.Hex())
}

// ColourString returns text in the given foreground colour.
func ColourString(rgb RGB, text string) string {
	if DisableColourOutput {
		return text
	}
	return fg(rgb) + text + ansiReset
}

// SwatchRow renders the palette as adjacent labelled blocks on one line.
func SwatchRow(p Palette, width int) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = ColourPreviewWithText(c, c.Hex(), width)
	}
	return strings.Join(parts, "")
}

func bg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}
