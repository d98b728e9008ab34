// Package config loads and validates application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/icd-suggest/internal/common"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides (ICD_FORM_LATENCY, ...).
const EnvPrefix = "ICD"

// Output formats for the predict command.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Settings holds all configurable values.
type Settings struct {
	Logging LoggingSettings `mapstructure:"logging"`
	Predict PredictSettings `mapstructure:"predict"`
	Form    FormSettings    `mapstructure:"form"`
}

// LoggingSettings controls slog output.
type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// FormSettings controls the interactive form.
type FormSettings struct {
	Theme   string        `mapstructure:"theme"`
	Latency time.Duration `mapstructure:"latency"`
	// DebugLog receives slog output while the form owns the terminal.
	// Empty discards it.
	DebugLog string `mapstructure:"debug_log"`
}

// PredictSettings controls one-shot predictions.
type PredictSettings struct {
	Output string `mapstructure:"output"`
}

// SetDefaults registers default values and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("form.latency", 1500*time.Millisecond)
	v.SetDefault("form.theme", "default")
	v.SetDefault("form.debug_log", "")
	v.SetDefault("predict.output", OutputText)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks settings for values the application cannot use.
func (s *Settings) Validate() error {
	if _, err := common.ParseLevel(s.Logging.Level); err != nil {
		return err
	}
	if s.Logging.Format != "console" && s.Logging.Format != "json" {
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, s.Logging.Format)
	}
	if s.Form.Latency < 0 {
		return fmt.Errorf("%w: form latency %s is negative", common.ErrInvalidConfig, s.Form.Latency)
	}
	if s.Predict.Output != OutputText && s.Predict.Output != OutputJSON {
		return fmt.Errorf("%w: output %q", common.ErrInvalidConfig, s.Predict.Output)
	}
	return nil
}

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir() string {
	return ExpandPath("~/.config/icd")
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
