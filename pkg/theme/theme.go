// Package theme defines the YAML theme document, its inheritance rules,
// on-disk management, and compilation into a fast per-line matcher form.
package theme

import (
	"github.com/dkoosis/hue/pkg/palette"
)

// Metadata identifies a theme.
type Metadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// Detection is one auto-detection override: a regex source plus styling.
type Detection struct {
	Pattern       string `yaml:"pattern"`
	Color         string `yaml:"color"`
	Bold          bool   `yaml:"bold,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Dim           bool   `yaml:"dim,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
}

// IconMapping substitutes :word: occurrences with an icon and color.
type IconMapping struct {
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

// StyleGroup styles a set of keywords with one shared attribute set.
type StyleGroup struct {
	Keywords      []string `yaml:"keywords"`
	Color         string   `yaml:"color"`
	Bold          bool     `yaml:"bold,omitempty"`
	Italic        bool     `yaml:"italic,omitempty"`
	Underline     bool     `yaml:"underline,omitempty"`
	Dim           bool     `yaml:"dim,omitempty"`
	Strikethrough bool     `yaml:"strikethrough,omitempty"`
}

// Filter bundles icon mappings and style groups under one runtime name.
type Filter struct {
	IconMappings map[string]IconMapping `yaml:"icon_mappings,omitempty"`
	Styles       map[string]StyleGroup  `yaml:"styles"`
}

// Defaults mirrors the top-level detection/filter shape for inheritance.
type Defaults struct {
	AutoDetection map[string]Detection `yaml:"auto_detection,omitempty"`
	Filters       map[string]Filter    `yaml:"filters,omitempty"`
}

// Theme is a fully parsed theme document. It is immutable once loaded;
// inheritance resolution happens during Load, never afterwards.
type Theme struct {
	Metadata      Metadata             `yaml:"metadata"`
	Defaults      *Defaults            `yaml:"defaults,omitempty"`
	AutoDetection map[string]Detection `yaml:"auto_detection,omitempty"`
	Filters       map[string]Filter    `yaml:"filters"`
}

// Default returns the embedded minimal theme used when no theme file
// resolves: auto-detection only, no filters.
func Default() *Theme {
	return &Theme{
		Metadata: Metadata{
			Name:        "hue-minimal",
			Version:     "1.0.0",
			Description: "Minimal default theme with auto-detection only",
		},
		AutoDetection: map[string]Detection{},
		Filters:       map[string]Filter{},
	}
}

// applyInheritance merges the defaults block into the top-level maps.
// Entries the theme declares itself always win at the same key.
func (t *Theme) applyInheritance() {
	if t.Defaults == nil {
		return
	}
	if t.AutoDetection == nil {
		t.AutoDetection = map[string]Detection{}
	}
	if t.Filters == nil {
		t.Filters = map[string]Filter{}
	}

	for key, d := range t.Defaults.AutoDetection {
		if _, ok := t.AutoDetection[key]; !ok {
			t.AutoDetection[key] = d
		}
	}

	for name, def := range t.Defaults.Filters {
		user, ok := t.Filters[name]
		if !ok {
			t.Filters[name] = def
			continue
		}
		if user.IconMappings == nil {
			user.IconMappings = map[string]IconMapping{}
		}
		if user.Styles == nil {
			user.Styles = map[string]StyleGroup{}
		}
		for word, icon := range def.IconMappings {
			if _, ok := user.IconMappings[word]; !ok {
				user.IconMappings[word] = icon
			}
		}
		for key, style := range def.Styles {
			if _, ok := user.Styles[key]; !ok {
				user.Styles[key] = style
			}
		}
		t.Filters[name] = user
	}
}

// IconFor looks up the icon mapping for a word within a filter.
func (t *Theme) IconFor(filterName, word string) (IconMapping, bool) {
	f, ok := t.Filters[filterName]
	if !ok {
		return IconMapping{}, false
	}
	m, ok := f.IconMappings[word]
	return m, ok
}

// Style converts the detection entry's flags to a renderable style.
func (d Detection) Style() palette.Style {
	return palette.Style{
		Color:         d.Color,
		Bold:          d.Bold,
		Italic:        d.Italic,
		Underline:     d.Underline,
		Dim:           d.Dim,
		Strikethrough: d.Strikethrough,
	}
}

// Style converts the group's flags to a renderable style.
func (g StyleGroup) Style() palette.Style {
	return palette.Style{
		Color:         g.Color,
		Bold:          g.Bold,
		Italic:        g.Italic,
		Underline:     g.Underline,
		Dim:           g.Dim,
		Strikethrough: g.Strikethrough,
	}
}

// Formatted renders ":word:" substitution output as
// "{color}{icon} {word}{reset}", the same shape the compiled template
// produces.
func (m IconMapping) Formatted(word string) string {
	code, _ := palette.Code(m.Color)
	return code + m.Icon + " " + word + palette.Reset
}
