package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Flags carries parsed CLI flag values plus set-markers so unset flags
// do not shadow lower-priority sources.
type Flags struct {
	Theme   string
	Filter  string
	Width   int
	Align   string
	NoColor bool
	Debug   bool

	ThemeSet   bool
	FilterSet  bool
	WidthSet   bool
	AlignSet   bool
	NoColorSet bool
	DebugSet   bool
}

// File is the shape of the optional .hue.yaml document.
type File struct {
	Theme   string `yaml:"theme,omitempty"`
	Filter  string `yaml:"filter,omitempty"`
	Width   int    `yaml:"width,omitempty"`
	Align   string `yaml:"align,omitempty"`
	NoColor bool   `yaml:"no_color,omitempty"`
	Debug   bool   `yaml:"debug,omitempty"`
}

// Settings is the fully resolved configuration.
type Settings struct {
	Theme   string
	Filter  string
	Width   int
	Align   string
	NoColor bool
	Debug   bool
}

const fileName = ".hue.yaml"

// Resolve merges flags, environment, config file, and defaults into the
// effective settings. A malformed config file is an error; a missing
// one is not.
func Resolve(flags Flags) (Settings, error) {
	fileCfg, err := loadFile()
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		Theme:   fileCfg.Theme,
		Filter:  fileCfg.Filter,
		Width:   fileCfg.Width,
		Align:   fileCfg.Align,
		NoColor: fileCfg.NoColor,
		Debug:   fileCfg.Debug,
	}
	if s.Align == "" {
		s.Align = "left"
	}

	if envSet("HUE_NO_COLOR") || envSet("NO_COLOR") {
		s.NoColor = true
	}
	if envSet("HUE_DEBUG") {
		s.Debug = true
	}

	if flags.ThemeSet {
		s.Theme = flags.Theme
	}
	if flags.FilterSet {
		s.Filter = flags.Filter
	}
	if flags.WidthSet {
		s.Width = flags.Width
	}
	if flags.AlignSet {
		s.Align = flags.Align
	}
	if flags.NoColorSet {
		s.NoColor = flags.NoColor
	}
	if flags.DebugSet {
		s.Debug = flags.Debug
	}

	return s, nil
}

// loadFile reads the first .hue.yaml found: working directory, then the
// XDG config home.
func loadFile() (File, error) {
	candidates := []string{
		fileName,
		filepath.Join(xdg.ConfigHome, "hue", fileName),
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return File{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
		return f, nil
	}
	return File{}, nil
}

func envSet(name string) bool {
	return os.Getenv(name) != ""
}
