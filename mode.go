package dotmatrix

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TimeType is the clock style.
type TimeType int

const (
	TimeFullScreen TimeType = iota
	TimeRainbow
	TimeWithBox
	TimeAnalogSquare
	TimeFullScreenNegative
	TimeAnalogRound
)

// LightingType is the lighting pattern.
type LightingType int

const (
	LightingPlainColor LightingType = iota
	LightingLove
	LightingPlants
	LightingNoMoodLight
	LightingSleeping
)

// WeatherType is the weather symbol shown next to the temperature.
type WeatherType int

const (
	WeatherClear        WeatherType = 1
	WeatherCloudySky    WeatherType = 3
	WeatherThunderstorm WeatherType = 5
	WeatherRain         WeatherType = 6
	WeatherSnow         WeatherType = 8
	WeatherFog          WeatherType = 9
)

// EffectType picks one of the built-in effects.
type EffectType int

const (
	EffectGradient EffectType = iota
	EffectRain
	EffectFire
	EffectSnake
	EffectHearts
	EffectFireworks
	EffectStars
)

// VisualizationType picks one of the built-in sound visualizations.
type VisualizationType int

const (
	VisualizationBars VisualizationType = iota
	VisualizationWave
	VisualizationPeaks
	VisualizationCircle
	VisualizationSpectrum
	VisualizationPulse
)

var timeNames = map[string]int{
	"fullscreen":          int(TimeFullScreen),
	"rainbow":             int(TimeRainbow),
	"box":                 int(TimeWithBox),
	"analog-square":       int(TimeAnalogSquare),
	"fullscreen-negative": int(TimeFullScreenNegative),
	"analog-round":        int(TimeAnalogRound),
}

var lightingNames = map[string]int{
	"plain":   int(LightingPlainColor),
	"love":    int(LightingLove),
	"plants":  int(LightingPlants),
	"no-mood": int(LightingNoMoodLight),
	"sleep":   int(LightingSleeping),
}

var weatherNames = map[string]int{
	"clear":        int(WeatherClear),
	"cloudy":       int(WeatherCloudySky),
	"thunderstorm": int(WeatherThunderstorm),
	"rain":         int(WeatherRain),
	"snow":         int(WeatherSnow),
	"fog":          int(WeatherFog),
}

var effectNames = map[string]int{
	"gradient":  int(EffectGradient),
	"rain":      int(EffectRain),
	"fire":      int(EffectFire),
	"snake":     int(EffectSnake),
	"hearts":    int(EffectHearts),
	"fireworks": int(EffectFireworks),
	"stars":     int(EffectStars),
}

var visualizationNames = map[string]int{
	"bars":     int(VisualizationBars),
	"wave":     int(VisualizationWave),
	"peaks":    int(VisualizationPeaks),
	"circle":   int(VisualizationCircle),
	"spectrum": int(VisualizationSpectrum),
	"pulse":    int(VisualizationPulse),
}

func name(names map[string]int, v int) string {
	for k, n := range names {
		if n == v {
			return k
		}
	}
	return strconv.Itoa(v)
}

// lookup accepts either a name or the raw number.
func lookup(names map[string]int, kind, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if v, ok := names[s]; ok {
		return v, nil
	}
	if v, err := strconv.ParseUint(s, 10, 8); err == nil {
		return int(v), nil
	}
	return 0, fmt.Errorf("dotmatrix: unknown %s %q, expected one of %s", kind, s, strings.Join(sortedNames(names), ", "))
}

// sortedNames returns the keys of names in order.
func sortedNames(names map[string]int) []string {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (t TimeType) String() string     { return name(timeNames, int(t)) }
func (t LightingType) String() string { return name(lightingNames, int(t)) }
func (t WeatherType) String() string  { return name(weatherNames, int(t)) }
func (t EffectType) String() string   { return name(effectNames, int(t)) }

func (t VisualizationType) String() string { return name(visualizationNames, int(t)) }

// TimeTypes returns the names accepted by ParseTimeType.
func TimeTypes() []string { return sortedNames(timeNames) }

// LightingTypes returns the names accepted by ParseLightingType.
func LightingTypes() []string { return sortedNames(lightingNames) }

// WeatherTypes returns the names accepted by ParseWeatherType.
func WeatherTypes() []string { return sortedNames(weatherNames) }

// EffectTypes returns the names accepted by ParseEffectType.
func EffectTypes() []string { return sortedNames(effectNames) }

// VisualizationTypes returns the names accepted by ParseVisualizationType.
func VisualizationTypes() []string { return sortedNames(visualizationNames) }

// ParseTimeType parses a clock style name or number.
func ParseTimeType(s string) (TimeType, error) {
	v, err := lookup(timeNames, "time type", s)
	return TimeType(v), err
}

// ParseLightingType parses a lighting pattern name or number.
func ParseLightingType(s string) (LightingType, error) {
	v, err := lookup(lightingNames, "lighting type", s)
	return LightingType(v), err
}

// ParseWeatherType parses a weather symbol name or number.
func ParseWeatherType(s string) (WeatherType, error) {
	v, err := lookup(weatherNames, "weather type", s)
	return WeatherType(v), err
}

// ParseEffectType parses an effect name or number.
func ParseEffectType(s string) (EffectType, error) {
	v, err := lookup(effectNames, "effect type", s)
	return EffectType(v), err
}

// ParseVisualizationType parses a visualization name or number.
func ParseVisualizationType(s string) (VisualizationType, error) {
	v, err := lookup(visualizationNames, "visualization type", s)
	return VisualizationType(v), err
}
