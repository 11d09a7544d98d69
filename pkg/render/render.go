// Package render draws the theme-management command output: styled
// listings and previews of a theme's filters and patterns.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/hue/pkg/theme"
)

// UI bundles the lipgloss styles for command output.
type UI struct {
	Title  lipgloss.Style
	Name   lipgloss.Style
	Source lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultUI returns the standard command-output styling.
func DefaultUI() UI {
	return UI{
		Title:  lipgloss.NewStyle().Bold(true),
		Name:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Source: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
}

var titleCaser = cases.Title(language.English)

// Heading renders a title-cased bold section heading.
func (u UI) Heading(s string) string {
	return u.Title.Render(titleCaser.String(s))
}

// ThemeList renders discovered themes as an aligned listing.
func (u UI) ThemeList(entries []theme.Entry) string {
	if len(entries) == 0 {
		return u.Muted.Render("No themes found") + "\n"
	}

	maxName := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Name); w > maxName {
			maxName = w
		}
	}

	var sb strings.Builder
	sb.WriteString(u.Heading("available themes"))
	sb.WriteString("\n")
	for _, e := range entries {
		pad := strings.Repeat(" ", maxName-runewidth.StringWidth(e.Name))
		sb.WriteString("  ")
		sb.WriteString(u.Name.Render(e.Name))
		sb.WriteString(pad)
		sb.WriteString("  ")
		sb.WriteString(u.Source.Render(fmt.Sprintf("%-5s", e.Source)))
		sb.WriteString("  ")
		sb.WriteString(u.Muted.Render(e.Path))
		sb.WriteString("\n")
	}
	return sb.String()
}

// ThemeInfo renders a theme's metadata and filter inventory.
func (u UI) ThemeInfo(t *theme.Theme) string {
	var sb strings.Builder
	sb.WriteString(u.Heading(t.Metadata.Name))
	if t.Metadata.Version != "" {
		sb.WriteString(u.Muted.Render(" v" + t.Metadata.Version))
	}
	sb.WriteString("\n")
	if t.Metadata.Description != "" {
		sb.WriteString("  " + t.Metadata.Description + "\n")
	}

	if len(t.AutoDetection) > 0 {
		sb.WriteString(fmt.Sprintf("  %d detection pattern(s)\n", len(t.AutoDetection)))
	}
	names := make([]string, 0, len(t.Filters))
	for name := range t.Filters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := t.Filters[name]
		keywords := 0
		for _, g := range f.Styles {
			keywords += len(g.Keywords)
		}
		sb.WriteString("  ")
		sb.WriteString(u.Name.Render(name))
		sb.WriteString(u.Muted.Render(fmt.Sprintf("  %d icon(s), %d group(s), %d keyword(s)",
			len(f.IconMappings), len(f.Styles), keywords)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// SampleLines is the fixed corpus previews run through a theme to show
// its effect: templates, icons, keywords, auto-detectable spans.
func SampleLines() []string {
	return []string{
		"Deploying v2.3.1 to ~/app/config.yml",
		"docs at https://example.com/getting-started",
		"build passed, 3 warnings, 0 failed",
		"status :critical: disk usage above threshold",
		"%c:emerald(SUCCESS) in 4.2s",
	}
}
