// Loading the background layout from defaults, config file, env and flags
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/ds124wfegd/dmg-background/internal/entity"
	"github.com/ds124wfegd/dmg-background/internal/pkg/fonts"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "DMGBG"
	ArrowNone  = "none"
	configEnv  = EnvPrefix + "_CONFIG"
	configName = "config"
)

// Defaults match the window layout the DMG packaging script uses.
const (
	DefaultWidth         = 800
	DefaultHeight        = 450
	DefaultIconSize      = 100
	DefaultArrowWidth    = 3
	DefaultArrowHeadSize = 12
	DefaultText          = "Drag to install"
	DefaultTextSize      = 20
	DefaultTextY         = 240
	DefaultOutputPath    = "scripts/installers/dmg-background.png"
)

var (
	DefaultAppIcon    = entity.Point{X: 200, Y: 190}
	DefaultAppsFolder = entity.Point{X: 600, Y: 185}
	DefaultBackground = entity.Color{R: 255, G: 255, B: 255, A: 0}
	DefaultTextColor  = entity.Color{R: 110, G: 110, B: 115, A: 255}
)

type Config struct {
	Canvas CanvasConfig `mapstructure:"canvas"`
	Icons  IconsConfig  `mapstructure:"icons"`
	Arrow  ArrowConfig  `mapstructure:"arrow"`
	Text   TextConfig   `mapstructure:"text"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

type CanvasConfig struct {
	Width      int          `mapstructure:"width"`
	Height     int          `mapstructure:"height"`
	Background entity.Color `mapstructure:"background"`
}

type IconsConfig struct {
	App        entity.Point `mapstructure:"app"`
	AppsFolder entity.Point `mapstructure:"apps_folder"`
	Size       int          `mapstructure:"size"`
	Hints      bool         `mapstructure:"hints"`
}

type ArrowConfig struct {
	// Color is "none" (or empty) to disable the arrow, otherwise any colour
	// form entity.ParseColor accepts.
	Color    interface{} `mapstructure:"color"`
	Width    int         `mapstructure:"width"`
	HeadSize int         `mapstructure:"head_size"`
}

type TextConfig struct {
	Content   string       `mapstructure:"content"`
	Color     entity.Color `mapstructure:"color"`
	Size      int          `mapstructure:"size"`
	PositionY int          `mapstructure:"position_y"`
	FontPaths []string     `mapstructure:"font_paths"`
}

type OutputConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultLayout is the layout produced with no config file, env or flags.
func DefaultLayout() entity.Layout {
	return entity.Layout{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		AppIcon:       DefaultAppIcon,
		AppsFolder:    DefaultAppsFolder,
		IconSize:      DefaultIconSize,
		Background:    DefaultBackground,
		ArrowWidth:    DefaultArrowWidth,
		ArrowHeadSize: DefaultArrowHeadSize,
		Text:          DefaultText,
		TextColor:     DefaultTextColor,
		TextSize:      DefaultTextSize,
		TextY:         DefaultTextY,
		FontPaths:     append([]string(nil), fonts.SystemFontPaths...),
		OutputPath:    DefaultOutputPath,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("canvas.width", DefaultWidth)
	v.SetDefault("canvas.height", DefaultHeight)
	v.SetDefault("canvas.background", colorList(DefaultBackground))

	v.SetDefault("icons.app", []int{DefaultAppIcon.X, DefaultAppIcon.Y})
	v.SetDefault("icons.apps_folder", []int{DefaultAppsFolder.X, DefaultAppsFolder.Y})
	v.SetDefault("icons.size", DefaultIconSize)
	v.SetDefault("icons.hints", false)

	v.SetDefault("arrow.color", ArrowNone)
	v.SetDefault("arrow.width", DefaultArrowWidth)
	v.SetDefault("arrow.head_size", DefaultArrowHeadSize)

	v.SetDefault("text.content", DefaultText)
	v.SetDefault("text.color", colorList(DefaultTextColor))
	v.SetDefault("text.size", DefaultTextSize)
	v.SetDefault("text.position_y", DefaultTextY)
	v.SetDefault("text.font_paths", fonts.SystemFontPaths)

	v.SetDefault("output.path", DefaultOutputPath)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadConfig layers flags over DMGBG_* env vars over an optional config.yaml
// (./config or ., or the file named by DMGBG_CONFIG) over built-in defaults.
// Only --text and --output are bound from flags, and only when non-empty.
func LoadConfig(flags *pflag.FlagSet, fs afero.Fs) (*viper.Viper, error) {
	viperInstance := viper.New()
	if fs != nil {
		viperInstance.SetFs(fs)
	}

	setDefaults(viperInstance)

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	if flags != nil {
		if err := bindFlag(viperInstance, "text.content", flags, "text"); err != nil {
			return nil, err
		}
		if err := bindFlag(viperInstance, "output.path", flags, "output"); err != nil {
			return nil, err
		}
	}

	if path := GetEnv(configEnv, ""); path != "" {
		viperInstance.SetConfigFile(path)
	} else {
		viperInstance.AddConfigPath("./config")
		viperInstance.AddConfigPath(".")
		viperInstance.SetConfigName(configName)
		viperInstance.SetConfigType("yaml")
	}

	if err := viperInstance.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return viperInstance, nil
}

func bindFlag(v *viper.Viper, key string, flags *pflag.FlagSet, name string) error {
	flag := flags.Lookup(name)
	// an empty value means the flag was not given
	if flag == nil || flag.Value.String() == "" {
		return nil
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind --%s: %w", name, err)
	}
	return nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config

	err := v.Unmarshal(&c, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		colorHook,
		pointHook,
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return &c, nil
}

// Layout freezes the configuration into the value the composer consumes.
func (c *Config) Layout() (entity.Layout, error) {
	layout := entity.Layout{
		Width:         c.Canvas.Width,
		Height:        c.Canvas.Height,
		AppIcon:       c.Icons.App,
		AppsFolder:    c.Icons.AppsFolder,
		IconSize:      c.Icons.Size,
		IconHints:     c.Icons.Hints,
		Background:    c.Canvas.Background,
		ArrowWidth:    c.Arrow.Width,
		ArrowHeadSize: c.Arrow.HeadSize,
		Text:          c.Text.Content,
		TextColor:     c.Text.Color,
		TextSize:      c.Text.Size,
		TextY:         c.Text.PositionY,
		FontPaths:     append([]string(nil), c.Text.FontPaths...),
		OutputPath:    c.Output.Path,
	}

	if !arrowDisabled(c.Arrow.Color) {
		arrow, err := entity.ParseColor(c.Arrow.Color)
		if err != nil {
			return entity.Layout{}, fmt.Errorf("arrow.color: %w", err)
		}
		layout.Arrow = &arrow
	}

	if err := layout.Validate(); err != nil {
		return entity.Layout{}, err
	}
	return layout, nil
}

func arrowDisabled(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "" || s == ArrowNone
	case bool:
		return !v
	}
	return false
}

func colorHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(entity.Color{}) {
		return data, nil
	}
	return entity.ParseColor(data)
}

func pointHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(entity.Point{}) {
		return data, nil
	}
	return entity.ParsePoint(data)
}

func colorList(c entity.Color) []int {
	return []int{int(c.R), int(c.G), int(c.B), int(c.A)}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
