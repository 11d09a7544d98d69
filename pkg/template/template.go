// Package template implements the %c:colorname(text) inline color
// templating syntax.
//
// Parsing rules:
//   - no nesting: a %c: marker inside a template body stays literal
//   - parentheses in the body must balance; depth counting decides the end
//   - anything that fails to parse is passed through untouched
package template

import (
	"strings"

	"github.com/dkoosis/hue/pkg/palette"
)

// Parser rewrites color templates in a line of text.
type Parser struct {
	noColor bool
}

// NewParser returns a parser. With noColor set, recognized templates are
// replaced by their bare content instead of colored output.
func NewParser(noColor bool) *Parser {
	return &Parser{noColor: noColor}
}

// Process scans text left to right and rewrites every recognized
// template. Unrecognized or malformed spans remain literal.
func (p *Parser) Process(text string) string {
	runes := []rune(text)
	var out strings.Builder
	out.Grow(len(text))

	i := 0
	for i < len(runes) {
		end, replaced, ok := p.parseAt(runes, i)
		if ok {
			out.WriteString(replaced)
			i = end
			continue
		}
		out.WriteRune(runes[i])
		i++
	}
	return out.String()
}

// parseAt attempts to parse a template starting at position start.
// On success it returns the position just past the closing parenthesis
// and the replacement text.
func (p *Parser) parseAt(runes []rune, start int) (end int, replaced string, ok bool) {
	// Shortest recognizable form still needs room for "%c:" + "(" + ")".
	if start+4 >= len(runes) {
		return 0, "", false
	}
	if runes[start] != '%' || runes[start+1] != 'c' || runes[start+2] != ':' {
		return 0, "", false
	}

	// Color name runs from after "%c:" to the opening parenthesis.
	var name strings.Builder
	i := start + 3
	for i < len(runes) {
		ch := runes[i]
		if ch == '(' {
			break
		}
		if !isNameRune(ch) {
			return 0, "", false
		}
		name.WriteRune(ch)
		i++
	}
	if i >= len(runes) || runes[i] != '(' {
		return 0, "", false
	}

	contentEnd, content, balanced := balancedContent(runes, i+1)
	if !balanced {
		// Unterminated template: the whole span stays literal.
		return 0, "", false
	}

	if p.noColor {
		// Strip delimiters regardless of whether the color resolves.
		return contentEnd + 1, content, true
	}

	code, known := palette.Code(name.String())
	if !known {
		// Unknown color: leave the template untouched.
		return 0, "", false
	}
	return contentEnd + 1, code + content + palette.Reset, true
}

// balancedContent reads from start (just past the opening parenthesis)
// up to the matching close. Returns the index of the closing parenthesis
// and the content between the delimiters.
func balancedContent(runes []rune, start int) (end int, content string, ok bool) {
	depth := 1
	var body strings.Builder
	pos := start

	for pos < len(runes) && depth > 0 {
		ch := runes[pos]
		switch ch {
		case '(':
			depth++
			body.WriteRune(ch)
		case ')':
			depth--
			if depth > 0 {
				body.WriteRune(ch)
			}
		default:
			body.WriteRune(ch)
		}
		pos++
	}

	if depth != 0 {
		return 0, "", false
	}
	return pos - 1, body.String(), true
}

func isNameRune(ch rune) bool {
	switch {
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	case ch >= '0' && ch <= '9':
		return true
	case ch == '_':
		return true
	}
	return false
}
