package theme

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry describes one discoverable theme on disk.
type Entry struct {
	Name   string
	Path   string
	Source string // "xdg" or "local"
}

// List discovers themes in the XDG theme dir and ./themes. XDG entries
// win when the same name exists in both. Results are sorted by name.
func List() ([]Entry, error) {
	var entries []Entry
	seen := map[string]bool{}

	scan := func(dir, source string) error {
		items, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading theme dir %s: %w", dir, err)
		}
		for _, item := range items {
			name := item.Name()
			if item.IsDir() || !strings.HasSuffix(name, ".yml") {
				continue
			}
			themeName := strings.TrimSuffix(strings.TrimPrefix(name, "theme_"), ".yml")
			if seen[themeName] {
				continue
			}
			seen[themeName] = true
			entries = append(entries, Entry{
				Name:   themeName,
				Path:   filepath.Join(dir, name),
				Source: source,
			})
		}
		return nil
	}

	if err := scan(Dir(), "xdg"); err != nil {
		return nil, err
	}
	if err := scan(localThemeDir, "local"); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Create writes a starter theme file named <name>.yml in the current
// directory, seeded from the default theme.
func Create(name string) (string, error) {
	target := name + ".yml"
	t, err := Load("")
	if err != nil {
		t = Default()
	}
	data, err := yaml.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("encoding theme: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	return target, nil
}

// Import copies <name>.yml from the current directory into the XDG
// theme dir as theme_<name>.yml.
func Import(name string) (string, error) {
	source := name + ".yml"
	if !fileExists(source) {
		return "", fmt.Errorf("theme file %s not found in current directory", source)
	}
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return "", fmt.Errorf("creating theme dir: %w", err)
	}
	target := filepath.Join(Dir(), "theme_"+name+".yml")
	if err := copyFile(source, target); err != nil {
		return "", err
	}
	return target, nil
}

// Export copies theme_<name>.yml from the XDG theme dir to <name>.yml
// in the current directory.
func Export(name string) (string, error) {
	source := filepath.Join(Dir(), "theme_"+name+".yml")
	if !fileExists(source) {
		return "", fmt.Errorf("theme %q not found in %s", name, Dir())
	}
	target := name + ".yml"
	if err := copyFile(source, target); err != nil {
		return "", err
	}
	return target, nil
}

// Edit opens the resolved theme file in $EDITOR (default nano) and
// waits for it to exit.
func Edit(name string) error {
	path := ResolvePath(name)
	if path == "" {
		return fmt.Errorf("theme %q not found", name)
	}
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "nano"
	}
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", editor, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return out.Close()
}
