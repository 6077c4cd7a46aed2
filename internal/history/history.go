// Package history holds the ordered list of generated palettes and its
// persistence under a single storage key.
package history

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/paletta/internal/colour"
)

// ErrIndexOutOfRange is returned when a history index does not exist.
var ErrIndexOutOfRange = errors.New("history index out of range")

// IndexError reports an invalid history index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of bounds: %d (history has %d palettes)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// History is a list of palettes, most recently created first.
// Methods never modify the receiver's backing array.
type History []colour.Palette

// Len returns the number of palettes.
func (h History) Len() int {
	return len(h)
}

// Prepend returns a new history with p at index 0.
func (h History) Prepend(p colour.Palette) History {
	out := make(History, 0, len(h)+1)
	out = append(out, p)
	return append(out, h...)
}

// Remove returns a new history without the palette at index i.
func (h History) Remove(i int) (History, error) {
	if err := h.check(i); err != nil {
		return h, err
	}
	out := make(History, 0, len(h)-1)
	out = append(out, h[:i]...)
	return append(out, h[i+1:]...), nil
}

// Get returns the palette at index i.
func (h History) Get(i int) (colour.Palette, error) {
	if err := h.check(i); err != nil {
		return colour.Palette{}, err
	}
	return h[i], nil
}

func (h History) check(i int) error {
	if i < 0 || i >= len(h) {
		return &IndexError{Index: i, Len: len(h)}
	}
	return nil
}

// Hex returns the history as nested hex string lists.
func (h History) Hex() [][]string {
	out := make([][]string, len(h))
	for i, p := range h {
		out[i] = p.ToHex()
	}
	return out
}
