package dotmatrix

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tables := []struct {
		in  string
		out color.RGBA
	}{
		{"#ff8000", color.RGBA{0xff, 0x80, 0x00, 0xff}},
		{"FF8000", color.RGBA{0xff, 0x80, 0x00, 0xff}},
		{"#f80", color.RGBA{0xff, 0x88, 0x00, 0xff}},
		{"1, 2, 3", color.RGBA{1, 2, 3, 0xff}},
		{"rgb(255,0,10)", color.RGBA{255, 0, 10, 0xff}},
		{"Orange", color.RGBA{0xff, 0xa5, 0x00, 0xff}},
		{" white ", color.RGBA{0xff, 0xff, 0xff, 0xff}},
	}

	for _, table := range tables {
		c, err := ParseColor(table.in)
		require.NoError(t, err, table.in)
		assert.Equal(t, table.out, c, table.in)
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12345", "#gggggg", "1,2", "1,2,256", "rgb(a,b,c)", "nonsense"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#ff8000", FormatColor(color.RGBA{0xff, 0x80, 0x00, 0xff}))
	assert.Equal(t, "#000000", FormatColor(color.Black))
}
