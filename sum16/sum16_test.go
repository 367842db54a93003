package sum16

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tables := []struct {
		name string
		in   []byte
		sum  uint16
	}{
		{"empty", nil, 0},
		{"cloud", []byte{0x04, 0x00, 0x45, 0x02}, 0x004b},
		{"carry", []byte{0xff, 0xff, 0x02}, 0x0200},
		{"wrap", []byte(strings.Repeat("\xff", 258)), uint16(258 * 0xff % 65536)},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.sum, Checksum(table.in))
		})
	}
}

func TestHash(t *testing.T) {
	h := New()
	assert.Equal(t, Size, h.Size())
	assert.Equal(t, 1, h.BlockSize())

	_, _ = h.Write([]byte{0x04, 0x00})
	_, _ = h.Write([]byte{0x45, 0x02})
	assert.Equal(t, []byte{0x4b, 0x00}, h.Sum(nil))

	h.Reset()
	assert.Equal(t, []byte{0x00, 0x00}, h.Sum(nil))
}

func TestHex(t *testing.T) {
	tables := []struct {
		in, out string
	}{
		{"", "0000"},
		{"04004502", "4b00"},
		{"0400450", "4900"},
		{"ffff02", "0002"},
		{"FFFF02", "0002"},
	}

	for _, table := range tables {
		assert.Equal(t, table.out, Hex(table.in), table.in)
	}
}

func TestHexStable(t *testing.T) {
	s := "44000a0a04aa1f00000000"
	assert.Equal(t, Hex(s), Hex(s))
}
