package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "gingershot"
	envPrefix = "GINGERSHOT"
)

// Config controls how the page is rendered and how the header behaves.
type Config struct {
	CompactThreshold int    `mapstructure:"compact-threshold"` // Pixels scrolled before the header turns compact
	RowHeight        int    `mapstructure:"row-height"`        // Pixels per terminal row
	Style            string `mapstructure:"style"`             // Glamour style name
	Wrap             int    `mapstructure:"wrap"`              // Maximum text width
	DesktopWidth     int    `mapstructure:"desktop-width"`     // Terminal width at which inline links are shown
	Mouse            bool   `mapstructure:"mouse"`
	NoColor          bool   `mapstructure:"no-color"`
	Debug            bool   `mapstructure:"debug"`
	LogFile          string `mapstructure:"log-file"`
}

func DefaultConfig() Config {
	return Config{
		CompactThreshold: defaultCompactThreshold,
		RowHeight:        16,
		Style:            "dark",
		Wrap:             80,
		DesktopWidth:     100,
		Mouse:            true,
		LogFile:          filepath.Join(xdg.StateHome, appName, "debug.log"),
	}
}

var knownStyles = []string{"ascii", "dark", "dracula", "light", "notty", "pink", "tokyo-night"}

var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the renderer cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.CompactThreshold < 0 {
		errs = append(errs, fmt.Errorf("%w: compact-threshold must not be negative", ErrInvalidConfig))
	}
	if c.RowHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: row-height must be positive", ErrInvalidConfig))
	}
	if c.Wrap < 20 {
		errs = append(errs, fmt.Errorf("%w: wrap must be at least 20", ErrInvalidConfig))
	}
	if !slices.Contains(knownStyles, c.Style) {
		errs = append(errs, fmt.Errorf("%w: unknown style %q (want one of %s)", ErrInvalidConfig, c.Style, strings.Join(knownStyles, ", ")))
	}
	return errors.Join(errs...)
}

// RenderStyle is the glamour style actually used, honouring no-color.
func (c Config) RenderStyle() string {
	if c.NoColor {
		return "notty"
	}
	return c.Style
}

// registerConfigFlags declares every Config field as a flag on fs.
func registerConfigFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.Int("compact-threshold", d.CompactThreshold, "pixels scrolled before the header turns compact")
	fs.Int("row-height", d.RowHeight, "pixels per terminal row when converting scroll offsets")
	fs.String("style", d.Style, "render style ("+strings.Join(knownStyles, ", ")+")")
	fs.Int("wrap", d.Wrap, "maximum text width")
	fs.Int("desktop-width", d.DesktopWidth, "terminal width at which header links are shown inline")
	fs.Bool("mouse", d.Mouse, "scroll with the mouse wheel")
	fs.Bool("no-color", d.NoColor, "disable colored output")
	fs.Bool("debug", d.Debug, "write debug logs to the log file")
	fs.String("log-file", d.LogFile, "debug log location")
}

// loadConfig resolves the configuration. Precedence, highest first: flags set
// on the command line, GINGERSHOT_* environment, the config file, defaults.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet, cfgFile string) (Config, error) {
	d := DefaultConfig()
	v.SetDefault("compact-threshold", d.CompactThreshold)
	v.SetDefault("row-height", d.RowHeight)
	v.SetDefault("style", d.Style)
	v.SetDefault("wrap", d.Wrap)
	v.SetDefault("desktop-width", d.DesktopWidth)
	v.SetDefault("mouse", d.Mouse)
	v.SetDefault("no-color", d.NoColor)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log-file", d.LogFile)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine, a missing explicit one is not
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadDotEnv loads GINGERSHOT_* values from a .env file into the environment.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
