package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// localThemeDir is the project-relative theme directory checked after
// the XDG location.
const localThemeDir = "themes"

// Dir returns the XDG theme directory (~/.config/hue/themes by default).
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "hue", "themes")
}

// ResolvePath maps a theme name to a file path.
//
// Explicit paths (./x.yml, /abs/x.yml, anything ending in .yml) are used
// as given. Bare names are looked up as theme_<name>.yml under the XDG
// theme dir, then ./themes/, then as a direct filename in both.
// Returns empty string when nothing exists.
func ResolvePath(name string) string {
	if strings.HasPrefix(name, "./") || strings.HasPrefix(name, "/") || strings.HasSuffix(name, ".yml") {
		if fileExists(name) {
			return name
		}
		return ""
	}

	filename := "theme_" + name + ".yml"
	candidates := []string{
		filepath.Join(Dir(), filename),
		filepath.Join(localThemeDir, filename),
		filepath.Join(Dir(), name),
		filepath.Join(localThemeDir, name),
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c
		}
	}
	return ""
}

// Load resolves and parses a theme by name. An empty name tries the
// "default" theme and falls back to the embedded minimal default; a
// non-empty name that does not resolve is an error.
func Load(name string) (*Theme, error) {
	if name == "" {
		if path := ResolvePath("default"); path != "" {
			return LoadFile(path)
		}
		return Default(), nil
	}
	path := ResolvePath(name)
	if path == "" {
		return nil, fmt.Errorf("theme %q not found in %s or ./%s", name, Dir(), localThemeDir)
	}
	return LoadFile(path)
}

// LoadFile parses a theme document and resolves its inheritance.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %s: %w", path, err)
	}
	t.applyInheritance()
	return &t, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
