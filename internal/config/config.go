package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const relativeConfigPath = "dictview/dictview.yaml"

type Config struct {
	LogLevel string       `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	Store    StoreConfig  `mapstructure:"store" yaml:"store"`
	Window   WindowConfig `mapstructure:"window" yaml:"window"`
	Font     FontConfig   `mapstructure:"font" yaml:"font"`
	Colors   ColorConfig  `mapstructure:"colors" yaml:"colors"`
}

type StoreConfig struct {
	// AppDir is the directory created under the per-user data home.
	AppDir string `mapstructure:"app_dir" yaml:"app_dir" validate:"required"`
	// BundledDir overrides the dictionaries directory shipped next to the
	// executable. Empty means "next to the executable".
	BundledDir string `mapstructure:"bundled_dir" yaml:"bundled_dir"`
}

type WindowConfig struct {
	Width  float32 `mapstructure:"width" yaml:"width" validate:"gt=0"`
	Height float32 `mapstructure:"height" yaml:"height" validate:"gt=0"`
	// Screen size used when the platform cannot report one.
	ScreenWidth  float32 `mapstructure:"screen_width" yaml:"screen_width" validate:"gt=0"`
	ScreenHeight float32 `mapstructure:"screen_height" yaml:"screen_height" validate:"gt=0"`
}

type FontConfig struct {
	DefaultSize       float32 `mapstructure:"default_size" yaml:"default_size" validate:"gtefield=MinSize"`
	MinSize           float32 `mapstructure:"min_size" yaml:"min_size" validate:"gt=0"`
	MaximizeIncrement float32 `mapstructure:"maximize_increment" yaml:"maximize_increment" validate:"gte=0"`
}

type ColorConfig struct {
	Foreground string `mapstructure:"foreground" yaml:"foreground"`
	Background string `mapstructure:"background" yaml:"background"`
	TitleBar   string `mapstructure:"title_bar" yaml:"title_bar"`
	Selection  string `mapstructure:"selection" yaml:"selection"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Store: StoreConfig{
			AppDir: "DictionaryApp",
		},
		Window: WindowConfig{
			Width:        450,
			Height:       450,
			ScreenWidth:  1920,
			ScreenHeight: 1080,
		},
		Font: FontConfig{
			DefaultSize:       12,
			MinSize:           6,
			MaximizeIncrement: 4,
		},
		Colors: ColorConfig{
			Foreground: "#CA9EE6",
			Background: "#303446",
			TitleBar:   "#1E212D",
			Selection:  "#2A2E3A",
		},
	}
}

type InitError struct {
	Path string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init config %s: %s", e.Path, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// DefaultPath returns the config file location under the XDG config home,
// creating its parent directory.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(relativeConfigPath)
}

// EnsureFile writes the default configuration to path unless a file is
// already there.
func EnsureFile(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	exist, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}
	if exist {
		return nil
	}

	handle, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer handle.Close()

	cfg := Default()
	return yaml.NewEncoder(handle).Encode(&cfg)
}

// Load reads the configuration at path, seeding it first if missing. Keys
// absent from the file keep their default values.
func Load(fs afero.Fs, path string) (Config, error) {
	var cfg Config

	if err := EnsureFile(fs, path); err != nil {
		return cfg, &InitError{Path: path, Err: err}
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		return cfg, &InitError{Path: path, Err: err}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, &InitError{Path: path, Err: fmt.Errorf("invalid configuration format: %w", err)}
	}
	if err := cfg.validate(); err != nil {
		return cfg, &InitError{Path: path, Err: err}
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("store.app_dir", d.Store.AppDir)
	v.SetDefault("store.bundled_dir", d.Store.BundledDir)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.screen_width", d.Window.ScreenWidth)
	v.SetDefault("window.screen_height", d.Window.ScreenHeight)
	v.SetDefault("font.default_size", d.Font.DefaultSize)
	v.SetDefault("font.min_size", d.Font.MinSize)
	v.SetDefault("font.maximize_increment", d.Font.MaximizeIncrement)
	v.SetDefault("colors.foreground", d.Colors.Foreground)
	v.SetDefault("colors.background", d.Colors.Background)
	v.SetDefault("colors.title_bar", d.Colors.TitleBar)
	v.SetDefault("colors.selection", d.Colors.Selection)
}

func (c Config) validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	err = validate.Struct(c)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, e.Translate(trans))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
}
