/*
Package sum16 implements the 16-bit additive checksum used by the LED matrix
firmware to protect each frame.

Every byte is added to a running total which wraps at 65536. The firmware
expects the result little-endian, so unlike most hash.Hash implementations
Sum appends the low byte first.
*/
package sum16

import (
	"encoding/hex"
	"hash"
)

// Size of a checksum in bytes.
const Size = 2

type digest struct {
	sum uint16
}

// New creates a new hash.Hash computing the 16-bit additive checksum. Its Sum
// method will lay the value out in little-endian byte order.
func New() hash.Hash {
	return &digest{}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.sum = 0 }

func update(sum uint16, p []byte) uint16 {
	for _, b := range p {
		sum += uint16(b)
	}
	return sum
}

// Update returns the result of adding the bytes in p to sum.
func Update(sum uint16, p []byte) uint16 {
	return update(sum, p)
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.sum = update(d.sum, p)
	return len(p), nil
}

func (d *digest) Sum16() uint16 { return d.sum }

func (d *digest) Sum(in []byte) []byte {
	s := d.sum
	return append(in, byte(s), byte(s>>8))
}

// Checksum returns the checksum of data.
func Checksum(data []byte) uint16 { return Update(0, data) }

// Hex returns the checksum of the bytes described by the hex digits in s,
// rendered as four lowercase hex digits in little-endian order. A trailing
// odd digit is ignored and so is anything that isn't a hex digit pair.
func Hex(s string) string {
	var sum uint16
	var tmp [1]byte
	for i := 0; i+1 < len(s); i += 2 {
		if _, err := hex.Decode(tmp[:], []byte(s[i:i+2])); err != nil {
			continue
		}
		sum += uint16(tmp[0])
	}
	return hex.EncodeToString([]byte{byte(sum), byte(sum >> 8)})
}
