package dotmatrix

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses s as one of "#rrggbb", "rrggbb", "#rgb", "r,g,b",
// "rgb(r, g, b)" or an SVG color name such as "orange".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		s = s[4 : len(s)-1]
	}
	if strings.Contains(s, ",") {
		return parseTriplet(s)
	}

	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var b [3]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{b[0], b[1], b[2], 0xff}, nil
}

func parseTriplet(s string) (color.RGBA, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var b [3]uint8
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		b[i] = uint8(v)
	}
	return color.RGBA{b[0], b[1], b[2], 0xff}, nil
}

// FormatColor renders c as "#rrggbb", alpha is discarded.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return "#" + hex.EncodeToString([]byte{n.R, n.G, n.B})
}

func parseOrDefault(s, def string) (color.RGBA, error) {
	if s == "" {
		s = def
	}
	return ParseColor(s)
}
