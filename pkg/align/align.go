// Package align pads or truncates styled lines to a fixed display width.
//
// Width is measured in runes after removing SGR escape sequences. That
// undercounts terminals' cell widths for wide glyphs (including the
// auto-detection icons), so alignment is approximate for lines carrying
// them. This is intentional, documented behavior, not a bug.
package align

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Alignment selects where padding goes.
type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

// ParseAlignment maps a config string to an Alignment. Unrecognized
// values fall back to Left.
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(s) {
	case "center", "centre":
		return Center
	case "right":
		return Right
	default:
		return Left
	}
}

func (a Alignment) String() string {
	switch a {
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "left"
	}
}

var sgr = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripSGR removes all SGR escape sequences.
func StripSGR(s string) string {
	return sgr.ReplaceAllString(s, "")
}

// VisibleLength counts the runes that remain after removing SGR
// sequences.
func VisibleLength(s string) int {
	return len([]rune(StripSGR(s)))
}

// Format fits line to width: truncation when the visible text is at
// least as wide as the target, padding otherwise. Padding is plain
// spaces and carries no ANSI state, so callers must not pass lines with
// unterminated styling.
func Format(line string, width int, a Alignment) string {
	visible := VisibleLength(line)
	if visible >= width {
		return Truncate(line, width)
	}

	pad := width - visible
	switch a {
	case Right:
		return strings.Repeat(" ", pad) + line
	case Center:
		left := pad / 2
		return strings.Repeat(" ", left) + line + strings.Repeat(" ", pad-left)
	default:
		return line + strings.Repeat(" ", pad)
	}
}

// Truncate cuts line to width visible runes. Escape sequences are
// copied through without counting. When truncation actually removes
// text and width exceeds 3, the last three visible runes become "..."
// (escapes between them survive).
func Truncate(line string, width int) string {
	if width == 0 {
		return ""
	}

	// Tokenize: escapes keep zero width, everything else one rune each.
	type token struct {
		text    string
		visible bool
	}
	var tokens []token
	visible := 0
	i := 0
	for i < len(line) && visible < width {
		if loc := sgr.FindStringIndex(line[i:]); loc != nil && loc[0] == 0 {
			tokens = append(tokens, token{text: line[i : i+loc[1]]})
			i += loc[1]
			continue
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		tokens = append(tokens, token{text: string(r), visible: true})
		visible++
		i += size
	}

	cut := i < len(line) && visible == width
	if cut && width > 3 {
		// Drop the last three visible tokens, keep any escapes.
		dropped := 0
		for j := len(tokens) - 1; j >= 0 && dropped < 3; j-- {
			if tokens[j].visible {
				tokens[j].text = ""
				dropped++
			}
		}
	}

	var out strings.Builder
	for _, tok := range tokens {
		out.WriteString(tok.text)
	}
	if cut && width > 3 {
		out.WriteString("...")
	}
	return out.String()
}
