package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "bezierpoints.cfg.json"

// WindowConfig holds window settings
type WindowConfig struct {
	Title      string `json:"title" mapstructure:"title"`
	Width      int    `json:"width" mapstructure:"width"`
	Height     int    `json:"height" mapstructure:"height"`
	Fullscreen bool   `json:"fullscreen" mapstructure:"fullscreen"`
	TargetFPS  int    `json:"targetFps" mapstructure:"targetFps"`
}

// PointConfig describes the shared point marker
type PointConfig struct {
	Radius   float32 `json:"radius" mapstructure:"radius"`
	Segments int     `json:"segments" mapstructure:"segments"`
	Color    string  `json:"color" mapstructure:"color"`
}

// DiagnosticsConfig toggles the per-frame console dump and the overlay
type DiagnosticsConfig struct {
	Console bool `json:"console" mapstructure:"console"`
	Overlay bool `json:"overlay" mapstructure:"overlay"`
}

type Config struct {
	LogLevel    string
	Window      WindowConfig
	Point       PointConfig
	Diagnostics DiagnosticsConfig
}

// Load sets default values and reads the optional JSON config file from
// configDir. A missing file is not an error; a malformed one is.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.title", "Bezier Points")
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.fullscreen", true)
	viper.SetDefault("window.targetFps", 60)

	viper.SetDefault("point.radius", 5.0)
	viper.SetDefault("point.segments", 32)
	viper.SetDefault("point.color", "Purple")

	viper.SetDefault("diagnostics.console", false)
	viper.SetDefault("diagnostics.overlay", true)

	viper.SetEnvPrefix("BEZIERPOINTS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// Get returns the loaded configuration.
func Get() Config {
	return Config{
		LogLevel: viper.GetString("logLevel"),
		Window: WindowConfig{
			Title:      viper.GetString("window.title"),
			Width:      viper.GetInt("window.width"),
			Height:     viper.GetInt("window.height"),
			Fullscreen: viper.GetBool("window.fullscreen"),
			TargetFPS:  viper.GetInt("window.targetFps"),
		},
		Point: PointConfig{
			Radius:   float32(viper.GetFloat64("point.radius")),
			Segments: viper.GetInt("point.segments"),
			Color:    viper.GetString("point.color"),
		},
		Diagnostics: DiagnosticsConfig{
			Console: viper.GetBool("diagnostics.console"),
			Overlay: viper.GetBool("diagnostics.overlay"),
		},
	}
}
