package highlight

import (
	"regexp"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/dkoosis/hue/pkg/palette"
	"github.com/dkoosis/hue/pkg/theme"
)

// legacyMatcher is the uncompiled fallback: matchers built one keyword
// at a time directly from the theme. Malformed entries are skipped
// individually instead of failing the whole build.
//
// Entries run in a fixed order (detections by name, then groups by
// name, keywords in declaration order) so the output matches the
// compiled path byte for byte.
type legacyMatcher struct {
	theme      *theme.Theme
	filter     string
	detections []legacyDetection
	keywords   []legacyKeyword
}

type legacyDetection struct {
	regex *regexp.Regexp
	style string
	icon  string
}

type legacyKeyword struct {
	keyword string
	regex   *regexp.Regexp
	style   string
}

// legacyDetectionIcons mirrors the compiled path's glyph assignment.
var legacyDetectionIcons = map[string]string{
	"urls":     "\U0001f517",
	"versions": "\U0001f3f7️",
	"paths":    "\U0001f4c1",
}

func newLegacyMatcher(th *theme.Theme, filterName string) *legacyMatcher {
	m := &legacyMatcher{theme: th, filter: filterName}

	for _, name := range sortedNames(th.AutoDetection) {
		d := th.AutoDetection[name]
		pattern := d.Pattern
		if !containsCapture(pattern) {
			pattern = "(" + pattern + ")"
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			log.Warn().Str("detection", name).Err(err).Msg("skipping malformed detection pattern")
			continue
		}
		m.detections = append(m.detections, legacyDetection{
			regex: re,
			style: d.Style().Render(),
			icon:  legacyDetectionIcons[name],
		})
	}

	if f, ok := th.Filters[filterName]; ok {
		for _, groupName := range sortedNames(f.Styles) {
			g := f.Styles[groupName]
			style := g.Style().Render()
			for _, kw := range g.Keywords {
				re, err := regexp.Compile(theme.GroupPattern([]string{kw}))
				if err != nil {
					log.Warn().Str("keyword", kw).Err(err).Msg("skipping malformed keyword")
					continue
				}
				m.keywords = append(m.keywords, legacyKeyword{keyword: kw, regex: re, style: style})
			}
		}
	}

	if len(m.detections) == 0 && len(m.keywords) == 0 && len(th.Filters) == 0 {
		return nil
	}
	return m
}

// process applies the same three layers as the compiled path:
// auto-detection, icon mapping, keyword styling.
func (m *legacyMatcher) process(line string) string {
	result := line

	for _, d := range m.detections {
		re, style, icon := d.regex, d.style, d.icon
		result = re.ReplaceAllStringFunc(result, func(match string) string {
			sub := re.FindStringSubmatch(match)
			text := match
			if len(sub) > 1 && sub[1] != "" {
				text = sub[1]
			}
			if icon != "" {
				return icon + " " + style + text + palette.Reset
			}
			return style + text + palette.Reset
		})
	}

	result = theme.IconToken().ReplaceAllStringFunc(result, func(match string) string {
		word := match[1 : len(match)-1]
		mapping, ok := m.theme.IconFor(m.filter, word)
		if !ok {
			return match
		}
		return mapping.Formatted(word)
	})

	for _, k := range m.keywords {
		style := k.style
		result = k.regex.ReplaceAllStringFunc(result, func(match string) string {
			return style + match + palette.Reset
		})
	}

	return result
}

func containsCapture(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '(' {
			return true
		}
	}
	return false
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
