/*
Package animation assembles multi-frame animations for the 16 by 16 LED
matrix.

Every frame is palette encoded on its own and written as a record:

	aa BODYSIZE(2, LE) DELAY(2, LE, ms) FLAG COUNT PALETTE(3*n) PIXELS

where BODYSIZE counts the bytes after the size field and FLAG is 0x00 to
tell the firmware the frame carries a fresh palette. The records are
concatenated and prefixed with the animation opcode and the total record
size. That whole payload is then cut into pieces of 200 bytes and each piece
is sent in its own frame as:

	49 TOTAL(2, LE) INDEX PIECE
*/
package animation

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"

	"github.com/bodgit/dotmatrix/frame"
	"github.com/bodgit/dotmatrix/palette"
)

const (
	// Opcode identifies animation content.
	Opcode byte = 0x49

	// PieceSize is the number of hex digits in each piece, 200 bytes.
	PieceSize = 400

	// MaxSize is the largest total record size the TOTAL field holds.
	MaxSize = 0xffff

	maxDelay = 0xffff
)

var (
	ErrNoFrames      = errors.New("animation: no frames")
	ErrDelayMismatch = errors.New("animation: number of delays and frames differ")
	ErrTooLarge      = errors.New("animation: records exceed maximum size")
)

// Animation is a sequence of pictures, each shown for its delay. It
// mirrors image/gif.GIF and every image is expected to already be scaled to
// palette.Width by palette.Height.
type Animation struct {
	Image []image.Image
	Delay []int // 100ths of a second
}

// PaletteMode tells the firmware where the palette of a frame comes from.
type PaletteMode byte

const (
	// ResetPalette means the frame carries its own palette.
	ResetPalette PaletteMode = iota
	// ReusePalette means the frame reuses the palette of the previous
	// frame. Nothing encodes frames this way yet.
	ReusePalette
)

// Frame is one encoded animation frame.
type Frame struct {
	*palette.Picture
	Delay uint16 // milliseconds
	Mode  PaletteMode
}

// NewFrame palette encodes m, shown for the given number of 100ths of a
// second. Delays too long for the firmware are capped.
func NewFrame(m image.Image, delay int) (*Frame, error) {
	p, err := palette.New(m)
	if err != nil {
		return nil, err
	}

	ms := delay * 10
	switch {
	case ms < 0:
		ms = 0
	case ms > maxDelay:
		ms = maxDelay
	}

	return &Frame{
		Picture: p,
		Delay:   uint16(ms),
		Mode:    ResetPalette,
	}, nil
}

// Body returns the frame without its marker and size.
func (f *Frame) Body() []byte {
	pixels := f.PixelBytes()
	b := make([]byte, 0, 4+len(f.Palette)*palette.ColorSize+len(pixels))
	b = binary.LittleEndian.AppendUint16(b, f.Delay)
	b = append(b, byte(f.Mode), f.Count())
	b = append(b, f.PaletteBytes()...)
	return append(b, pixels...)
}

// Size returns the size of the complete record.
func (f *Frame) Size() int {
	return palette.RecordHeaderSize + len(f.Body())
}

// Record returns the frame as written into the animation.
func (f *Frame) Record() []byte {
	body := f.Body()
	b := make([]byte, 0, palette.RecordHeaderSize+len(body))
	b = append(b, palette.Marker)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(body)))
	return append(b, body...)
}

// Frames encodes every image in a.
func Frames(a *Animation) ([]*Frame, error) {
	if len(a.Image) == 0 {
		return nil, ErrNoFrames
	}
	if len(a.Image) != len(a.Delay) {
		return nil, ErrDelayMismatch
	}

	frames := make([]*Frame, 0, len(a.Image))
	for i, m := range a.Image {
		f, err := NewFrame(m, a.Delay[i])
		if err != nil {
			return nil, fmt.Errorf("animation: frame %d: %w", i, err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Assemble concatenates the frame records and returns the pieces, each
// already prefixed and framed. Records totalling more than MaxSize bytes
// wrap the TOTAL field, which Encode refuses. The piece index is a single
// byte and wraps after 256 pieces.
func Assemble(frames []*Frame) frame.Message {
	var records []byte
	for _, f := range frames {
		records = append(records, f.Record()...)
	}

	var total [2]byte
	binary.LittleEndian.PutUint16(total[:], uint16(len(records)))

	payload := make([]byte, 0, 1+len(total)+len(records))
	payload = append(payload, Opcode)
	payload = append(payload, total[:]...)
	payload = append(payload, records...)

	var m frame.Message
	for i := 0; len(payload) > 0; i++ {
		n := PieceSize >> 1
		if n > len(payload) {
			n = len(payload)
		}

		content := make([]byte, 0, 4+n)
		content = append(content, Opcode, total[0], total[1], byte(i))
		content = append(content, payload[:n]...)

		m = m.Append(content)
		payload = payload[n:]
	}
	return m
}

// Encode palette encodes every frame of a and returns the assembled
// Message.
func Encode(a *Animation) (frame.Message, error) {
	frames, err := Frames(a)
	if err != nil {
		return nil, err
	}
	if n := TotalSize(frames); n > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, n)
	}
	return Assemble(frames), nil
}

// TotalSize returns the number of record bytes frames assemble to.
func TotalSize(frames []*Frame) int {
	n := 0
	for _, f := range frames {
		n += f.Size()
	}
	return n
}
