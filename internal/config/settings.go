package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the user-editable configuration, read from YAML.
type Settings struct {
	Minutes int    `yaml:"minutes"`
	Seconds int    `yaml:"seconds"`
	Theme   string `yaml:"theme"`
	Banner  string `yaml:"banner"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Minutes: DefaultMinutes,
		Seconds: DefaultSeconds,
		Theme:   DefaultTheme,
		Banner:  DefaultBanner,
	}
}

// Load reads settings from path. A missing file yields the defaults; keys
// absent from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	if s.Banner == "" {
		s.Banner = DefaultBanner
	}
	return s, nil
}
