package palette

// Style describes a foreground color plus independent text attributes.
// The zero value renders to an empty string.
type Style struct {
	Color         string
	Bold          bool
	Italic        bool
	Underline     bool
	Dim           bool
	Strikethrough bool
}

// Render concatenates the SGR codes for the style: color first, then
// attributes in a fixed order (bold, dim, italic, underline,
// strikethrough). An unknown color contributes nothing.
func (s Style) Render() string {
	var out string
	if code, ok := Code(s.Color); ok {
		out += code
	}
	if s.Bold {
		out += Bold
	}
	if s.Dim {
		out += Dim
	}
	if s.Italic {
		out += Italic
	}
	if s.Underline {
		out += Underline
	}
	if s.Strikethrough {
		out += Strikethrough
	}
	return out
}
