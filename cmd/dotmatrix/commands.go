package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/bodgit/dotmatrix"
	"github.com/bodgit/dotmatrix/frame"
	"github.com/urfave/cli/v2"
)

func intArg(c *cli.Context, n int, name string) (int, error) {
	v, err := strconv.Atoi(c.Args().Get(n))
	if err != nil {
		return 0, cli.Exit(fmt.Sprintf("invalid %s %q", name, c.Args().Get(n)), 1)
	}
	return v, nil
}

func needArgs(c *cli.Context, n int) {
	if c.NArg() < n {
		cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
	}
}

func send(c *cli.Context, m frame.Message, err error) error {
	if err != nil {
		return cli.Exit(err, 1)
	}
	return emit(c, m)
}

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "clock",
			Usage: "Show the clock",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "style",
					Value: dotmatrix.TimeFullScreen.String(),
					Usage: "clock style, one of " + strings.Join(dotmatrix.TimeTypes(), ", "),
				},
				&cli.BoolFlag{Name: "hide-time", Usage: "hide the time"},
				&cli.BoolFlag{Name: "weather", Usage: "show the weather"},
				&cli.BoolFlag{Name: "temperature", Usage: "show the temperature"},
				&cli.BoolFlag{Name: "calendar", Usage: "show the calendar"},
				&cli.StringFlag{Name: "color", Value: "white", Usage: "clock color"},
			},
			Action: func(c *cli.Context) error {
				style, err := dotmatrix.ParseTimeType(c.String("style"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				m, err := dotmatrix.Time(dotmatrix.TimeOptions{
					Type:            style,
					ShowTime:        !c.Bool("hide-time"),
					ShowWeather:     c.Bool("weather"),
					ShowTemperature: c.Bool("temperature"),
					ShowCalendar:    c.Bool("calendar"),
					Color:           c.String("color"),
				})
				return send(c, m, err)
			},
		},
		{
			Name:  "light",
			Usage: "Fill the display with a color or pattern",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "color", Value: "white", Usage: "light color"},
				&cli.IntFlag{Name: "brightness", Value: 100, Usage: "brightness, 0-100"},
				&cli.StringFlag{
					Name:  "type",
					Value: dotmatrix.LightingPlainColor.String(),
					Usage: "pattern, one of " + strings.Join(dotmatrix.LightingTypes(), ", "),
				},
				&cli.BoolFlag{Name: "off", Usage: "turn the light off"},
			},
			Action: func(c *cli.Context) error {
				t, err := dotmatrix.ParseLightingType(c.String("type"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				m, err := dotmatrix.Lighting(dotmatrix.LightingOptions{
					Color:      c.String("color"),
					Brightness: c.Int("brightness"),
					Type:       t,
					Power:      !c.Bool("off"),
				})
				return send(c, m, err)
			},
		},
		{
			Name:  "cloud",
			Usage: "Switch to the cloud channel",
			Action: func(c *cli.Context) error {
				return emit(c, dotmatrix.Cloud())
			},
		},
		{
			Name:        "effect",
			Usage:       "Show a built-in effect",
			ArgsUsage:   "TYPE",
			Description: "TYPE is a number or one of " + strings.Join(dotmatrix.EffectTypes(), ", "),
			Action: func(c *cli.Context) error {
				needArgs(c, 1)
				t, err := dotmatrix.ParseEffectType(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				return emit(c, dotmatrix.Effect(t))
			},
		},
		{
			Name:        "visualize",
			Usage:       "Show a built-in sound visualization",
			ArgsUsage:   "TYPE",
			Description: "TYPE is a number or one of " + strings.Join(dotmatrix.VisualizationTypes(), ", "),
			Action: func(c *cli.Context) error {
				needArgs(c, 1)
				t, err := dotmatrix.ParseVisualizationType(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				return emit(c, dotmatrix.Visualization(t))
			},
		},
		{
			Name:      "score",
			Usage:     "Show the scoreboard",
			ArgsUsage: "RED BLUE",
			Action: func(c *cli.Context) error {
				needArgs(c, 2)
				red, err := intArg(c, 0, "red score")
				if err != nil {
					return err
				}
				blue, err := intArg(c, 1, "blue score")
				if err != nil {
					return err
				}
				return emit(c, dotmatrix.Scoreboard(red, blue))
			},
		},
		{
			Name:      "weather",
			Usage:     "Show the temperature and weather",
			ArgsUsage: "TEMPERATURE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "type",
					Value: dotmatrix.WeatherClear.String(),
					Usage: "weather, one of " + strings.Join(dotmatrix.WeatherTypes(), ", "),
				},
			},
			Action: func(c *cli.Context) error {
				needArgs(c, 1)
				temp, err := intArg(c, 0, "temperature")
				if err != nil {
					return err
				}
				t, err := dotmatrix.ParseWeatherType(c.String("type"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				m, err := dotmatrix.Weather(temp, t)
				return send(c, m, err)
			},
		},
		{
			Name:      "brightness",
			Usage:     "Set the display brightness",
			ArgsUsage: "VALUE",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "min", Usage: "lowest value of the input range"},
				&cli.IntFlag{Name: "max", Usage: "highest value of the input range"},
			},
			Action: func(c *cli.Context) error {
				needArgs(c, 1)
				v, err := intArg(c, 0, "brightness")
				if err != nil {
					return err
				}
				if c.IsSet("min") || c.IsSet("max") {
					m, err := dotmatrix.BrightnessRange(v, c.Int("min"), c.Int("max"))
					return send(c, m, err)
				}
				m, err := dotmatrix.Brightness(v)
				return send(c, m, err)
			},
		},
		{
			Name:      "raw",
			Usage:     "Send hex encoded content as is",
			ArgsUsage: "HEX",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "text", Usage: "treat the argument as text rather than hex"},
			},
			Action: func(c *cli.Context) error {
				needArgs(c, 1)
				if c.Bool("text") {
					return emit(c, dotmatrix.Raw([]byte(c.Args().First())))
				}
				m, err := dotmatrix.RawHex(c.Args().First())
				return send(c, m, err)
			},
		},
		{
			Name:      "show",
			Usage:     "Show a picture or animated GIF",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "colors", Usage: "reduce to at most this many colors, 0 keeps them all"},
			},
			Action: func(c *cli.Context) error {
				needArgs(c, 1)
				s := fromContext(c)

				e := dotmatrix.New(s.logger)
				e.Colors = s.cfg.Colors
				if c.IsSet("colors") {
					e.Colors = c.Int("colors")
				}

				m, err := e.StartFile(c.Args().First()).Wait()
				return send(c, m, err)
			},
		},
		{
			Name:      "convert",
			Usage:     "Print the chunks for each picture or animated GIF",
			ArgsUsage: "FILE...",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "colors", Usage: "reduce to at most this many colors, 0 keeps them all"},
				&cli.IntFlag{Name: "workers", Usage: "number of files encoded at once"},
			},
			Action: func(c *cli.Context) error {
				needArgs(c, 1)
				s := fromContext(c)

				e := dotmatrix.New(s.logger)
				e.Colors = s.cfg.Colors
				if c.IsSet("colors") {
					e.Colors = c.Int("colors")
				}
				workers := s.cfg.Workers
				if c.IsSet("workers") {
					workers = c.Int("workers")
				}

				files := c.Args().Slice()
				messages, err := e.EncodeFiles(context.Background(), files, workers)
				if err != nil {
					return cli.Exit(err, 1)
				}
				for i, m := range messages {
					fmt.Fprintf(c.App.Writer, "# %s\n", files[i])
					for _, chunk := range m {
						fmt.Fprintln(c.App.Writer, chunk)
					}
				}
				return nil
			},
		},
		{
			Name:      "inspect",
			Usage:     "Decode chunks back into frames and print their content",
			ArgsUsage: "CHUNK...",
			Action: func(c *cli.Context) error {
				needArgs(c, 1)
				frames, err := frame.Message(c.Args().Slice()).Frames()
				if err != nil {
					return cli.Exit(err, 1)
				}
				for _, f := range frames {
					fmt.Fprintln(c.App.Writer, hex.EncodeToString(f))
				}
				return nil
			},
		},
	}
}
