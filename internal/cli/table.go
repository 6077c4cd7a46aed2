package cli

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiEscape matches SGR sequences so swatch cells measure by what is shown.
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Table lays out rows in columns sized to their widest visible cell.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		padding: 2,
	}
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	fitted := make([]string, len(t.headers))
	copy(fitted, row)
	t.rows = append(t.rows, fitted)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], visibleLen(cell))
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder
	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = padRight(c, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		b.WriteString("\n")
	}

	writeLine(t.headers)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	writeLine(sep)
	for _, row := range t.rows {
		writeLine(row)
	}

	return b.String()
}

// visibleLen returns the printed width of s ignoring colour escapes.
func visibleLen(s string) int {
	return utf8.RuneCountInString(ansiEscape.ReplaceAllString(s, ""))
}

// padRight pads s with spaces to width visible columns.
func padRight(s string, width int) string {
	n := visibleLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
