// Package config loads the dotmatrix command configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variables overriding the file.
const EnvPrefix = "DOTMATRIX"

// DeviceConfig describes the link to the display.
type DeviceConfig struct {
	Path string  `mapstructure:"path"`
	Baud int     `mapstructure:"baud"`
	Rate float64 `mapstructure:"rate"` // chunks per second, 0 is unlimited
}

// FileConfig configures the rolling log file.
type FileConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"maxSize"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAge"`
	Compress   bool   `mapstructure:"compress"`
}

// LoggingConfig sets the log level and where logs go.
type LoggingConfig struct {
	Level  string     `mapstructure:"level"`
	Format string     `mapstructure:"format"`
	File   FileConfig `mapstructure:"file"`
}

// Config is the top level configuration.
type Config struct {
	Device  DeviceConfig  `mapstructure:"device"`
	Logging LoggingConfig `mapstructure:"logging"`
	Colors  int           `mapstructure:"colors"`
	Workers int           `mapstructure:"workers"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("device.path", "")
	v.SetDefault("device.baud", 115200)
	v.SetDefault("device.rate", 0)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.filename", "")
	v.SetDefault("logging.file.maxSize", 10)
	v.SetDefault("logging.file.maxBackups", 3)
	v.SetDefault("logging.file.maxAge", 28)
	v.SetDefault("logging.file.compress", false)

	v.SetDefault("colors", 0)
	v.SetDefault("workers", 4)
}

// Load reads the configuration from path, which may be YAML, TOML or JSON,
// and applies any DOTMATRIX_ environment variables on top. If path is
// empty a dotmatrix.* file is looked for in the working directory and
// $HOME/.config/dotmatrix, it not existing isn't an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("dotmatrix")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dotmatrix")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}
