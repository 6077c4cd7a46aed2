package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/paletta/internal/colour"
)

const (
	defaultSwatchSize = 96
	minSwatchSize     = 64
)

// renderPNG draws the palette as a row of square swatches, each labelled
// with its hex value near the bottom edge.
func renderPNG(p colour.Palette, opts Options) ([]byte, error) {
	size := opts.SwatchSize
	if size == 0 {
		size = defaultSwatchSize
	}
	if size < minSwatchSize {
		return nil, fmt.Errorf("swatch size must be at least %d, got %d", minSwatchSize, size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size*len(p), size))
	face := basicfont.Face7x13

	for i, c := range p {
		rect := image.Rect(i*size, 0, (i+1)*size, size)
		draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)

		label := c.Hex()
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(colour.ReadableTextColour(c)),
			Face: face,
		}
		width := d.MeasureString(label).Ceil()
		x := rect.Min.X + (size-width)/2
		y := size - face.Descent - 6
		d.Dot = fixed.P(x, y)
		d.DrawString(label)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
