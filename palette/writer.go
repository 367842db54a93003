package palette

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
	"math/bits"
)

// ErrWrongSize is returned when an image isn't exactly Width by Height.
var ErrWrongSize = errors.New("palette: image is wrong size")

// Color is a 24-bit color. Alpha is never stored.
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

func toColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// Picture is the palette and pixel indices of a single picture.
type Picture struct {
	Palette []Color
	Pixels  [NumPixels]int
}

// New scans m row by row and returns its palette and pixel indices. m must
// be exactly Width by Height pixels.
func New(m image.Image) (*Picture, error) {
	b := m.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return nil, ErrWrongSize
	}

	p := new(Picture)
	seen := make(map[Color]int)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := toColor(m.At(b.Min.X+x, b.Min.Y+y))
			i, ok := seen[c]
			if !ok {
				i = len(p.Palette)
				seen[c] = i
				p.Palette = append(p.Palette, c)
			}
			p.Pixels[x+Width*y] = i
		}
	}

	return p, nil
}

// BitWidth returns the number of bits needed to index a palette of n
// colors, never less than one.
func BitWidth(n int) int {
	if n <= 2 {
		return 1
	}
	return bits.Len(uint(n - 1))
}

// BitWidth returns the number of bits used for each pixel index.
func (p *Picture) BitWidth() int {
	return BitWidth(len(p.Palette))
}

// Count returns the palette size as stored on the wire. A palette of 256
// colors wraps around to zero.
func (p *Picture) Count() byte {
	return byte(len(p.Palette) % 256)
}

// PaletteBytes returns each palette color as three bytes, in palette order.
func (p *Picture) PaletteBytes() []byte {
	b := make([]byte, 0, len(p.Palette)*ColorSize)
	for _, c := range p.Palette {
		b = append(b, c.R, c.G, c.B)
	}
	return b
}

// PixelBytes returns the packed pixel indices.
func (p *Picture) PixelBytes() []byte {
	return pack(p.Pixels[:], p.BitWidth())
}

func reverse(group []byte) {
	for i, j := 0, len(group)-1; i < j; i, j = i+1, j-1 {
		group[i], group[j] = group[j], group[i]
	}
}

// pack writes each index as width bits, least significant bit first, then
// reverses the bits of every byte. The firmware expects exactly this.
func pack(indices []int, width int) []byte {
	stream := make([]byte, 0, len(indices)*width+7)
	for _, index := range indices {
		for i := 0; i < width; i++ {
			stream = append(stream, byte(index>>i&1))
		}
	}
	for len(stream)%8 != 0 {
		stream = append(stream, 0)
	}

	out := make([]byte, 0, len(stream)/8)
	for i := 0; i < len(stream); i += 8 {
		group := stream[i : i+8]
		reverse(group)

		var b byte
		for _, bit := range group {
			b = b<<1 | bit
		}
		out = append(out, b)
	}
	return out
}

// Size returns the size of the picture record, counting from the marker.
func (p *Picture) Size() int {
	return RecordHeaderSize + 4 + len(p.Palette)*ColorSize + (NumPixels*p.BitWidth()+7)/8
}

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(p *Picture) error {
	var tmp [RecordHeaderSize]byte
	tmp[0] = Marker
	binary.LittleEndian.PutUint16(tmp[1:], uint16(p.Size()))

	for _, b := range [][]byte{
		Prefix,
		tmp[:],
		{0x00, 0x00, 0x00},
		{p.Count()},
		p.PaletteBytes(),
		p.PixelBytes(),
	} {
		if _, err := e.w.Write(b); err != nil {
			return err
		}
	}

	return nil
}

// MarshalBinary returns the static picture payload.
func (p *Picture) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	e := encoder{w: b}
	if err := e.encode(p); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Encode writes the static picture payload for the Image m to w.
func Encode(w io.Writer, m image.Image) error {
	p, err := New(m)
	if err != nil {
		return err
	}

	e := encoder{w: w}

	return e.encode(p)
}
