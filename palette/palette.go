/*
Package palette implements the palette encoder used for pictures shown on the
16 by 16 LED matrix.

A picture is described by a palette of unique 24-bit colors, in the order
they are first seen scanning the pixels row by row, and an index into that
palette for each of the 256 pixels. Each index is written with the minimum
number of bits needed to address the palette, least significant bit first,
into one continuous bit stream. The stream is cut into groups of eight bits,
the last group padded with zeroes, and the order of the bits within each
group reversed before being written out as a byte.

A static picture is sent as:

	44 00 0a 0a 04 aa SIZE(2, LE) 00 00 00 COUNT PALETTE(3*n) PIXELS

where SIZE counts every byte from the aa marker to the end and COUNT is the
number of palette colors modulo 256.
*/
package palette

const (
	// Width of the LED matrix in pixels.
	Width = 16
	// Height of the LED matrix in pixels.
	Height = 16

	// NumPixels is the number of pixels in every picture.
	NumPixels = Width * Height

	// ColorSize is the number of bytes used for each palette color.
	ColorSize = 3

	// Marker starts each picture record.
	Marker byte = 0xaa

	// RecordHeaderSize is the size of the marker and size field.
	RecordHeaderSize = 3
)

// Prefix is written before a static picture record.
var Prefix = []byte{0x44, 0x00, 0x0a, 0x0a, 0x04}
