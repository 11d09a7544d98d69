package theme

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"sort"
	"strings"

	"github.com/dkoosis/hue/pkg/palette"
)

// Compiled is the read-only matcher form of a Theme: every regex built,
// every ANSI prefix rendered, ready for per-line application. Compile is
// the only constructor; a Compiled value is never partially initialized.
type Compiled struct {
	Checksum      uint64
	AutoDetection []CompiledDetection
	Filters       map[string]*CompiledFilter
}

// CompiledDetection is one ready-to-run detection matcher.
type CompiledDetection struct {
	Name  string
	Regex *regexp.Regexp
	Style string
	Icon  string
}

// CompiledFilter holds a filter's matchers plus a bulk pre-check over
// every keyword group.
type CompiledFilter struct {
	Icons  map[string]CompiledIcon
	Groups []CompiledGroup

	// anyKeyword matches when the line contains at least one keyword
	// from any group. Skipping group replacement on a miss is purely an
	// optimization; output is identical either way.
	patterns   []string
	anyKeyword *regexp.Regexp
}

// CompiledIcon carries the pre-rendered pieces of a :word: substitution.
type CompiledIcon struct {
	Icon   string
	Prefix string // "{color}{icon} "
}

// CompiledGroup is one style group's alternation matcher.
type CompiledGroup struct {
	Name     string
	Pattern  string
	Regex    *regexp.Regexp
	Style    string
	Keywords []string
}

// detectionIcons assigns the fixed glyphs to the well-known detection
// names; other entries get no icon.
var detectionIcons = map[string]string{
	"urls":     "\U0001f517",
	"versions": "\U0001f3f7️",
	"paths":    "\U0001f4c1",
}

// Compile builds the matcher form of a theme. It fails only when a
// pattern or keyword-derived regex does not compile.
func Compile(t *Theme) (*Compiled, error) {
	c := &Compiled{
		Checksum: Checksum(t),
		Filters:  map[string]*CompiledFilter{},
	}

	for _, name := range sortedKeys(t.AutoDetection) {
		d := t.AutoDetection[name]
		re, err := regexp.Compile(captureWrap(d.Pattern))
		if err != nil {
			return nil, fmt.Errorf("detection %q: %w", name, err)
		}
		c.AutoDetection = append(c.AutoDetection, CompiledDetection{
			Name:  name,
			Regex: re,
			Style: d.Style().Render(),
			Icon:  detectionIcons[name],
		})
	}

	for _, name := range sortedKeys(t.Filters) {
		cf, err := compileFilter(t.Filters[name])
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", name, err)
		}
		c.Filters[name] = cf
	}

	return c, nil
}

func compileFilter(f Filter) (*CompiledFilter, error) {
	cf := &CompiledFilter{Icons: map[string]CompiledIcon{}}

	for _, word := range sortedKeys(f.IconMappings) {
		m := f.IconMappings[word]
		code, _ := palette.Code(m.Color)
		cf.Icons[word] = CompiledIcon{
			Icon:   m.Icon,
			Prefix: code + m.Icon + " ",
		}
	}

	for _, name := range sortedKeys(f.Styles) {
		g := f.Styles[name]
		pattern := GroupPattern(g.Keywords)
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("style group %q: %w", name, err)
		}
		cf.Groups = append(cf.Groups, CompiledGroup{
			Name:     name,
			Pattern:  pattern,
			Regex:    re,
			Style:    g.Style().Render(),
			Keywords: g.Keywords,
		})
		cf.patterns = append(cf.patterns, pattern)
	}

	if len(cf.patterns) > 0 {
		re, err := regexp.Compile(strings.Join(cf.patterns, "|"))
		if err != nil {
			return nil, fmt.Errorf("bulk pattern: %w", err)
		}
		cf.anyKeyword = re
	}

	return cf, nil
}

// GroupPattern builds the alternation regex source for a keyword set:
// phrases (containing a space or colon) match literally, single tokens
// get word-boundary anchors, the whole group is case-insensitive.
func GroupPattern(keywords []string) string {
	alts := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if strings.ContainsAny(k, ": ") {
			alts = append(alts, regexp.QuoteMeta(k))
		} else {
			alts = append(alts, `\b`+regexp.QuoteMeta(k)+`\b`)
		}
	}
	return "(?i)(" + strings.Join(alts, "|") + ")"
}

// captureWrap ensures a pattern has a capture group so apply time can
// use the uniform "first capture or whole match" rule.
func captureWrap(pattern string) string {
	if strings.Contains(pattern, "(") {
		return pattern
	}
	return "(" + pattern + ")"
}

// iconToken matches :word: spans eligible for icon substitution.
var iconToken = regexp.MustCompile(`:([a-zA-Z_][a-zA-Z0-9_]*):`)

// IconToken exposes the :word: matcher shared by the compiled and
// legacy apply paths.
func IconToken() *regexp.Regexp {
	return iconToken
}

// Process applies the compiled matchers to one line: auto-detection,
// then icon substitution and keyword styling for the selected filter.
func (c *Compiled) Process(line, filterName string) string {
	result := line

	for _, d := range c.AutoDetection {
		re, style, icon := d.Regex, d.Style, d.Icon
		result = re.ReplaceAllStringFunc(result, func(m string) string {
			sub := re.FindStringSubmatch(m)
			matched := m
			if len(sub) > 1 && sub[1] != "" {
				matched = sub[1]
			}
			if icon != "" {
				return icon + " " + style + matched + palette.Reset
			}
			return style + matched + palette.Reset
		})
	}

	f, ok := c.Filters[filterName]
	if !ok {
		return result
	}

	result = iconToken.ReplaceAllStringFunc(result, func(m string) string {
		word := m[1 : len(m)-1]
		ci, ok := f.Icons[word]
		if !ok {
			return m
		}
		return ci.Prefix + word + palette.Reset
	})

	if f.anyKeyword != nil && !f.anyKeyword.MatchString(result) {
		return result
	}
	for _, g := range f.Groups {
		style := g.Style
		result = g.Regex.ReplaceAllStringFunc(result, func(m string) string {
			return style + m + palette.Reset
		})
	}

	return result
}

// Checksum folds the theme's semantically relevant fields into a stable
// 64-bit FNV-1a hash. Iteration is canonicalized (sorted keys) so the
// value never depends on map enumeration order.
func Checksum(t *Theme) uint64 {
	h := fnv.New64a()
	write := func(parts ...string) {
		for _, p := range parts {
			h.Write([]byte(p))
			h.Write([]byte{0})
		}
	}

	write(t.Metadata.Name, t.Metadata.Version)

	for _, name := range sortedKeys(t.AutoDetection) {
		d := t.AutoDetection[name]
		write(name, d.Pattern, d.Color)
	}

	for _, name := range sortedKeys(t.Filters) {
		f := t.Filters[name]
		write(name)
		for _, word := range sortedKeys(f.IconMappings) {
			m := f.IconMappings[word]
			write(word, m.Icon, m.Color)
		}
		for _, key := range sortedKeys(f.Styles) {
			g := f.Styles[key]
			write(key)
			write(g.Keywords...)
			write(g.Color)
		}
	}

	return h.Sum64()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
