/*
Package decoder turns picture files into images ready for the palette
encoder.

Pictures are decoded with the standard image decoders (plus BMP and WebP),
composited where they are animated and scaled to 16 by 16 pixels with
nearest neighbour sampling. Optionally the number of colors can be reduced
with a median cut quantizer first.
*/
package decoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"

	"github.com/bodgit/dotmatrix/animation"
	"github.com/bodgit/dotmatrix/palette"
	"github.com/disintegration/gift"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/webp" // register WebP
)

var (
	// ErrUnknownType is returned when the type of content can't be
	// determined.
	ErrUnknownType = errors.New("decoder: unknown content type")
	// ErrEmpty is returned for a GIF without any frames.
	ErrEmpty = errors.New("decoder: no frames")
)

const unknownMIME = "application/octet-stream"

// Sniff returns the MIME type of the content in b. Empty content has no
// type.
func Sniff(b []byte) (string, error) {
	if len(b) == 0 {
		return "", ErrUnknownType
	}
	m := mimetype.Detect(b)
	if m == nil || m.Is(unknownMIME) {
		return "", ErrUnknownType
	}
	return m.String(), nil
}

// Resize returns a copy of m scaled to the size of the LED matrix.
func Resize(m image.Image) image.Image {
	g := gift.New(gift.Resize(palette.Width, palette.Height, gift.NearestNeighborResampling))
	dst := image.NewNRGBA(g.Bounds(m.Bounds()))
	g.Draw(dst, m)
	return dst
}

// Reduce returns a copy of m using no more than n colors. If m already
// uses n colors or less it is returned unchanged.
func Reduce(m image.Image, n int) image.Image {
	if n <= 0 || countColors(m) <= n {
		return m
	}

	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

func countColors(m image.Image) int {
	colors := make(map[color.NRGBA]struct{})
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			c.A = 0xff
			colors[c] = struct{}{}
		}
	}
	return len(colors)
}

// Decode decodes a single picture from r and scales it.
func Decode(r io.Reader) (image.Image, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return Resize(m), nil
}

// DecodeAll decodes every frame of the GIF in r, composites each one onto
// the frames before it and scales the result.
func DecodeAll(r io.Reader) (*animation.Animation, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, ErrEmpty
	}

	a := &animation.Animation{
		Image: make([]image.Image, 0, len(g.Image)),
		Delay: make([]int, 0, len(g.Image)),
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewNRGBA(bounds)

	for i, p := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var previous *image.NRGBA
		if disposal == gif.DisposalPrevious {
			previous = clone(canvas)
		}

		draw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, draw.Over)

		var delay int
		if i < len(g.Delay) {
			delay = g.Delay[i]
		}
		a.Image = append(a.Image, Resize(canvas))
		a.Delay = append(a.Delay, delay)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	return a, nil
}

func clone(m *image.NRGBA) *image.NRGBA {
	dup := *m
	dup.Pix = bytes.Clone(m.Pix)
	return &dup
}
