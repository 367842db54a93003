/*
Package dotmatrix is a library for encoding content for 16 by 16 LED matrix
displays that are driven over a point-to-point serial link.

Each function returns a frame.Message; a fresh, ordered list of hex chunks
ready to be written to the link. Nothing is shared between calls, so
messages can be built concurrently and combined with Concat in whatever
order they should be sent.
*/
package dotmatrix

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/bodgit/dotmatrix/animation"
	"github.com/bodgit/dotmatrix/decoder"
	"github.com/bodgit/dotmatrix/frame"
	"github.com/bodgit/dotmatrix/palette"
	"go.uber.org/zap"
)

const maxColors = 255

// Encoder encodes pictures and animations.
type Encoder struct {
	// Colors, if greater than zero, reduces every picture or frame to at
	// most this many colors before encoding.
	Colors int

	logger *zap.Logger
}

// New returns an Encoder logging to logger, which may be nil.
func New(logger *zap.Logger) *Encoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Encoder{
		logger: logger,
	}
}

func (e *Encoder) prepare(m image.Image) image.Image {
	b := m.Bounds()
	if b.Dx() != palette.Width || b.Dy() != palette.Height {
		m = decoder.Resize(m)
	}
	return decoder.Reduce(m, e.Colors)
}

func (e *Encoder) checkPalette(p *palette.Picture, fields ...zap.Field) {
	fields = append(fields, zap.Int("colors", len(p.Palette)), zap.Int("bits", p.BitWidth()))
	if len(p.Palette) > maxColors {
		e.logger.Warn("palette overflows color count", fields...)
		return
	}
	if ce := e.logger.Check(zap.DebugLevel, "palette encoded"); ce != nil {
		colors := make([]string, len(p.Palette))
		for i, c := range p.Palette {
			colors[i] = FormatColor(c)
		}
		ce.Write(append(fields, zap.Strings("palette", colors))...)
	}
}

// EncodeImage encodes m as a static picture. It is scaled to the display
// first if necessary.
func (e *Encoder) EncodeImage(m image.Image) (frame.Message, error) {
	p, err := palette.New(e.prepare(m))
	if err != nil {
		return nil, err
	}
	e.checkPalette(p)

	b, err := p.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return frame.Build(b), nil
}

// EncodeAnimation encodes every frame of a. Frames are scaled to the
// display first if necessary. Animations whose records exceed
// animation.MaxSize bytes return animation.ErrTooLarge.
func (e *Encoder) EncodeAnimation(a *animation.Animation) (frame.Message, error) {
	prepared := &animation.Animation{
		Image: make([]image.Image, len(a.Image)),
		Delay: a.Delay,
	}
	for i, m := range a.Image {
		prepared.Image[i] = e.prepare(m)
	}

	frames, err := animation.Frames(prepared)
	if err != nil {
		return nil, err
	}
	for i, f := range frames {
		e.checkPalette(f.Picture, zap.Int("frame", i), zap.Uint16("delay", f.Delay))
	}
	if n := animation.TotalSize(frames); n > animation.MaxSize {
		e.logger.Warn("animation too large", zap.Int("frames", len(frames)), zap.Int("size", n))
		return nil, fmt.Errorf("%w: %d bytes", animation.ErrTooLarge, n)
	}

	m := animation.Assemble(frames)
	e.logger.Debug("animation assembled", zap.Int("frames", len(frames)), zap.Int("chunks", len(m)))
	return m, nil
}

// Encode sniffs the type of content in b and encodes it as either a static
// picture or, for a GIF, an animation.
func (e *Encoder) Encode(b []byte) (frame.Message, error) {
	mime, err := decoder.Sniff(b)
	if err != nil {
		return nil, ErrUnknownFileType
	}
	e.logger.Debug("content sniffed", zap.String("mime", mime), zap.Int("size", len(b)))

	switch mime {
	case "image/gif":
		a, err := decoder.DecodeAll(bytes.NewReader(b))
		if err != nil {
			return nil, &DecodeError{MIME: mime, Err: err}
		}
		return e.EncodeAnimation(a)
	case "image/png", "image/jpeg", "image/bmp", "image/webp":
		m, err := decoder.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, &DecodeError{MIME: mime, Err: err}
		}
		return e.EncodeImage(m)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, mime)
	}
}

// EncodeFile reads file and encodes it with Encode.
func (e *Encoder) EncodeFile(file string) (frame.Message, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return e.Encode(b)
}
