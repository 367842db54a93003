/*
Package frame implements the framing used on the point-to-point link to the
LED matrix.

Each frame is laid out as:

	PREFIX(0x01) LENGTH(2, LE) CONTENT(n) CHECKSUM(2, LE) SUFFIX(0x02)

LENGTH counts the content and checksum bytes. The checksum is the 16-bit
additive sum of the LENGTH and CONTENT bytes. Frames are rendered as
lowercase hex and cut into chunks of at most ChunkSize hex digits; the
chunk boundaries carry no meaning, the receiver reassembles using LENGTH.
*/
package frame

import (
	"encoding/binary"
	"errors"

	"github.com/bodgit/dotmatrix/sum16"
)

const (
	// Prefix starts every frame.
	Prefix byte = 0x01
	// Suffix ends every frame.
	Suffix byte = 0x02

	// ChunkSize is the maximum number of hex digits in one chunk, 666
	// bytes once decoded.
	ChunkSize = 1332

	// MaxContentSize is the largest content that fits the LENGTH field.
	MaxContentSize = 0xffff - sum16.Size

	lengthSize  = 2
	headerSize  = 1 + lengthSize
	trailerSize = sum16.Size + 1
	minimumSize = headerSize + trailerSize
)

var (
	ErrShortFrame       = errors.New("frame: not enough data")
	ErrTooLarge         = errors.New("frame: content too large")
	ErrBadPrefix        = errors.New("frame: invalid prefix")
	ErrBadSuffix        = errors.New("frame: invalid suffix")
	ErrLengthMismatch   = errors.New("frame: length too small to hold checksum")
	ErrChecksumMismatch = errors.New("frame: checksum mismatch")
)

// Encode wraps content in a single frame and returns the raw bytes. Content
// longer than MaxContentSize is not rejected but its LENGTH field wraps.
func Encode(content []byte) []byte {
	b := make([]byte, 0, minimumSize+len(content))
	b = append(b, Prefix)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(content)+sum16.Size))
	b = append(b, content...)
	b = binary.LittleEndian.AppendUint16(b, sum16.Checksum(b[1:]))
	return append(b, Suffix)
}

// Decode reads the first frame in b, verifies it and returns the content
// along with whatever follows the frame.
func Decode(b []byte) ([]byte, []byte, error) {
	if len(b) < minimumSize {
		return nil, b, ErrShortFrame
	}
	if b[0] != Prefix {
		return nil, b, ErrBadPrefix
	}

	length := int(binary.LittleEndian.Uint16(b[1:headerSize]))
	if length < sum16.Size {
		return nil, b, ErrLengthMismatch
	}

	end := headerSize + length
	if len(b) < end+1 {
		return nil, b, ErrShortFrame
	}
	if b[end] != Suffix {
		return nil, b, ErrBadSuffix
	}

	body := end - sum16.Size
	if sum16.Checksum(b[1:body]) != binary.LittleEndian.Uint16(b[body:end]) {
		return nil, b, ErrChecksumMismatch
	}

	return b[headerSize:body], b[end+1:], nil
}
