package dotmatrix

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bodgit/dotmatrix/frame"
)

const (
	maxBrightness = 100
	maxScore      = 999
	minTemp       = -127
	maxTemp       = 128

	defaultColor = "#ffffff"
)

var (
	opTime          = []byte{0x45, 0x00, 0x01}
	opLighting      = []byte{0x45, 0x01}
	opCloud         = []byte{0x45, 0x02}
	opEffect        = []byte{0x45, 0x03}
	opVisualization = []byte{0x45, 0x04}
	opScoreboard    = []byte{0x45, 0x06, 0x00}
	opWeather       = []byte{0x5f}
	opBrightness    = []byte{0x74}

	lightingSuffix = []byte{0x00, 0x00, 0x00}
)

func flag(b bool) byte {
	if b {
		return 0x01
	}
	return 0x00
}

func clamp(v, min, max int) int {
	switch {
	case v < min:
		return min
	case v > max:
		return max
	}
	return v
}

func payload(op []byte, params ...byte) []byte {
	b := make([]byte, 0, len(op)+len(params))
	b = append(b, op...)
	return append(b, params...)
}

// TimeOptions configures the clock.
type TimeOptions struct {
	Type            TimeType
	ShowTime        bool
	ShowWeather     bool
	ShowTemperature bool
	ShowCalendar    bool
	Color           string // white if empty
}

// Time shows the clock.
func Time(o TimeOptions) (frame.Message, error) {
	c, err := parseOrDefault(o.Color, defaultColor)
	if err != nil {
		return nil, err
	}

	return frame.Build(payload(opTime,
		byte(o.Type),
		flag(o.ShowTime),
		flag(o.ShowWeather),
		flag(o.ShowTemperature),
		flag(o.ShowCalendar),
		c.R, c.G, c.B,
	)), nil
}

// LightingOptions configures the lighting mode.
type LightingOptions struct {
	Color      string // white if empty
	Brightness int    // clamped to 0-100
	Type       LightingType
	Power      bool
}

// Lighting fills the display with a color or pattern.
func Lighting(o LightingOptions) (frame.Message, error) {
	c, err := parseOrDefault(o.Color, defaultColor)
	if err != nil {
		return nil, err
	}

	b := payload(opLighting,
		c.R, c.G, c.B,
		byte(clamp(o.Brightness, 0, maxBrightness)),
		byte(o.Type),
		flag(o.Power),
	)
	return frame.Build(append(b, lightingSuffix...)), nil
}

// Cloud switches to the cloud channel.
func Cloud() frame.Message {
	return frame.Build(payload(opCloud))
}

// Effect shows one of the built-in effects.
func Effect(t EffectType) frame.Message {
	return frame.Build(payload(opEffect, byte(t)))
}

// Visualization shows one of the built-in sound visualizations.
func Visualization(t VisualizationType) frame.Message {
	return frame.Build(payload(opVisualization, byte(t)))
}

// Scoreboard shows the two scores, each clamped to 0-999.
func Scoreboard(red, blue int) frame.Message {
	b := payload(opScoreboard)
	b = binary.LittleEndian.AppendUint16(b, uint16(clamp(red, 0, maxScore)))
	b = binary.LittleEndian.AppendUint16(b, uint16(clamp(blue, 0, maxScore)))
	return frame.Build(b)
}

// Weather shows the temperature, which must be between -127 and 128, and a
// weather symbol.
func Weather(temp int, t WeatherType) (frame.Message, error) {
	if temp < minTemp || temp > maxTemp {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRange, temp)
	}
	if temp < 0 {
		temp += 256
	}
	return frame.Build(payload(opWeather, byte(temp), byte(t))), nil
}

// Brightness sets the display brightness, which must be between 0 and 100.
func Brightness(value int) (frame.Message, error) {
	if value < 0 || value > maxBrightness {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBrightnessRange, value)
	}
	return frame.Build(payload(opBrightness, byte(value))), nil
}

// BrightnessRange sets the display brightness with value taken from the
// range min to max and scaled to 0-100, rounding up.
func BrightnessRange(value, min, max int) (frame.Message, error) {
	if max <= min || value < min || value > max {
		return nil, fmt.Errorf("%w: %d not in %d-%d", ErrInvalidBrightnessRange, value, min, max)
	}
	span := max - min
	return Brightness(((value-min)*maxBrightness + span - 1) / span)
}

// Raw frames content exactly as given. Content longer than
// frame.MaxContentSize is not rejected but its LENGTH field wraps.
func Raw(content []byte) frame.Message {
	return frame.Build(content)
}

// RawHex frames the bytes described by the hex digits in s.
func RawHex(s string) (frame.Message, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("dotmatrix: raw content: %w", err)
	}
	if len(b) > frame.MaxContentSize {
		return nil, fmt.Errorf("dotmatrix: raw content: %w: %d bytes", frame.ErrTooLarge, len(b))
	}
	return Raw(b), nil
}
