// Package autodetect recognizes common substrings (URLs, versions,
// filesystem paths) in a line and wraps them with icons and ANSI styling.
// Detection is theme-independent and always available.
package autodetect

import (
	"fmt"
	"regexp"

	"github.com/dkoosis/hue/pkg/palette"
)

// Pattern is one built-in detection rule.
type Pattern struct {
	Name  string
	Regex *regexp.Regexp
	Style string
	Icon  string
}

// Detector applies the built-in patterns in a fixed order.
//
// Order is a correctness invariant: each pattern rescans the already
// rewritten line, so the more specific pattern (URL) must run before the
// ones it could otherwise partially match (version, path). The three
// built-ins are chosen so that inserted icons and escape bytes never
// re-match a later pattern.
type Detector struct {
	patterns []Pattern
}

// Icon glyphs, with ASCII fallbacks for terminals without Unicode.
const (
	iconURL      = "\U0001f517" // 🔗
	iconVersion  = "\U0001f3f7️" // 🏷️
	iconPath     = "\U0001f4c1" // 📁
	asciiURL     = "[URL]"
	asciiVersion = "[VER]"
	asciiPath    = "[PATH]"
)

// New builds a detector. The unicode flag is an injected capability:
// callers probe the environment (or tests pin it) rather than the
// detector reading globals itself.
func New(unicode bool) (*Detector, error) {
	type spec struct {
		name          string
		expr          string
		style         palette.Style
		icon, fallback string
	}
	specs := []spec{
		// URLs first (most specific), then versions, then paths.
		{"urls", `(https?://[^\s]+)`, palette.Style{Color: "royal", Underline: true}, iconURL, asciiURL},
		{"versions", `\bv?(\d+\.\d+\.\d+(-\w+)?)\b`, palette.Style{Color: "emerald", Bold: true}, iconVersion, asciiVersion},
		{"paths", `\b([~/][^\s]+\.[a-z]{2,4})\b`, palette.Style{Color: "azure", Underline: true}, iconPath, asciiPath},
	}

	d := &Detector{}
	for _, s := range specs {
		re, err := regexp.Compile(s.expr)
		if err != nil {
			return nil, fmt.Errorf("compiling %s pattern: %w", s.name, err)
		}
		icon := s.icon
		if !unicode {
			icon = s.fallback
		}
		d.patterns = append(d.patterns, Pattern{
			Name:  s.name,
			Regex: re,
			Style: s.style.Render(),
			Icon:  icon,
		})
	}
	return d, nil
}

// Highlight rewrites every detected span as "<icon> <style><match><reset>".
func (d *Detector) Highlight(line string) string {
	result := line
	for _, p := range d.patterns {
		re, style, icon := p.Regex, p.Style, p.Icon
		result = re.ReplaceAllStringFunc(result, func(m string) string {
			sub := re.FindStringSubmatch(m)
			matched := m
			if len(sub) > 1 && sub[1] != "" {
				matched = sub[1]
			}
			return fmt.Sprintf("%s %s%s%s", icon, style, matched, palette.Reset)
		})
	}
	return result
}

// Patterns exposes the ordered rule set, mainly for preview rendering.
func (d *Detector) Patterns() []Pattern {
	return d.patterns
}
