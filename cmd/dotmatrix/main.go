package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/dotmatrix/frame"
	"github.com/bodgit/dotmatrix/internal/config"
	"github.com/bodgit/dotmatrix/internal/logging"
	"github.com/bodgit/dotmatrix/transport"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const envPrefix = config.EnvPrefix + "_"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

type state struct {
	cfg    *config.Config
	logger *zap.Logger
}

func fromContext(c *cli.Context) *state {
	return c.App.Metadata["state"].(*state)
}

func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	if c.IsSet("device") {
		cfg.Device.Path = c.String("device")
	}
	if c.IsSet("baud") {
		cfg.Device.Baud = c.Int("baud")
	}
	if c.IsSet("rate") {
		cfg.Device.Rate = c.Float64("rate")
	}
	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
	}
	if c.Bool("verbose") {
		cfg.Logging.Level = "debug"
	}

	c.App.Metadata["state"] = &state{
		cfg:    cfg,
		logger: logging.New(cfg.Logging, c.App.ErrWriter),
	}
	return nil
}

func teardown(c *cli.Context) error {
	if s, ok := c.App.Metadata["state"].(*state); ok {
		_ = s.logger.Sync()
	}
	return nil
}

// emit writes m to the configured device, or prints each chunk on its own
// line when there isn't one.
func emit(c *cli.Context, m frame.Message) error {
	s := fromContext(c)

	if s.cfg.Device.Path == "" {
		w := bufio.NewWriter(c.App.Writer)
		for _, chunk := range m {
			fmt.Fprintln(w, chunk)
		}
		return w.Flush()
	}

	cfg := transport.DefaultConfig(s.cfg.Device.Path)
	cfg.Baud = s.cfg.Device.Baud

	port, err := transport.Open(cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer port.Close()

	sender := transport.NewSender(port, rate.Limit(s.cfg.Device.Rate), s.logger)
	if err := sender.Send(context.Background(), m); err != nil {
		return cli.Exit(err, 1)
	}
	s.logger.Info("message sent", zap.String("device", cfg.Device), zap.Int("chunks", len(m)))
	return nil
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()

	app.Name = "dotmatrix"
	app.Usage = "16x16 LED matrix display utility"
	app.Version = "1.0.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Metadata = map[string]interface{}{}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{envPrefix + "CONFIG"},
			Usage:   "path to configuration file",
		},
		&cli.StringFlag{
			Name:    "device",
			Aliases: []string{"d"},
			EnvVars: []string{envPrefix + "DEVICE"},
			Usage:   "serial device connected to the display, chunks are printed if unset",
		},
		&cli.IntFlag{
			Name:    "baud",
			EnvVars: []string{envPrefix + "BAUD"},
			Value:   115200,
			Usage:   "serial baud rate",
		},
		&cli.Float64Flag{
			Name:    "rate",
			EnvVars: []string{envPrefix + "RATE"},
			Usage:   "maximum chunks written per second, 0 is unlimited",
		},
		&cli.StringFlag{
			Name:    "log-level",
			EnvVars: []string{envPrefix + "LOG_LEVEL"},
			Value:   "warn",
			Usage:   "log level (debug, info, warn, error)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Before = setup
	app.After = teardown
	app.Commands = commands()

	return app
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
