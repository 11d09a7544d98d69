// Package palette maps color names to ANSI SGR escape sequences.
//
// Names resolve against a fixed 256-color table. Lookup is the only
// operation; the table is never mutated at runtime.
package palette

// Reset clears all active SGR attributes.
const Reset = "\x1b[0m"

// SGR attribute codes, applied after the foreground color.
const (
	Bold          = "\x1b[1m"
	Dim           = "\x1b[2m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Strikethrough = "\x1b[9m"
)

// codes is the fixed palette: color name -> 256-color foreground sequence.
var codes = map[string]string{
	// Basic colors (bright variants of the classic eight).
	"black":   "\x1b[38;5;0m",
	"red":     "\x1b[38;5;9m",
	"green":   "\x1b[38;5;10m",
	"yellow":  "\x1b[38;5;11m",
	"blue":    "\x1b[38;5;12m",
	"magenta": "\x1b[38;5;13m",
	"cyan":    "\x1b[38;5;14m",
	"white":   "\x1b[38;5;15m",

	// Extended names.
	"crimson":   "\x1b[38;5;196m",
	"scarlet":   "\x1b[38;5;160m",
	"ruby":      "\x1b[38;5;124m",
	"coral":     "\x1b[38;5;210m",
	"salmon":    "\x1b[38;5;209m",
	"rose":      "\x1b[38;5;211m",
	"maroon":    "\x1b[38;5;88m",
	"rust":      "\x1b[38;5;130m",
	"orange":    "\x1b[38;5;208m",
	"amber":     "\x1b[38;5;214m",
	"gold":      "\x1b[38;5;220m",
	"khaki":     "\x1b[38;5;185m",
	"olive":     "\x1b[38;5;100m",
	"lime":      "\x1b[38;5;118m",
	"emerald":   "\x1b[38;5;34m",
	"jade":      "\x1b[38;5;35m",
	"mint":      "\x1b[38;5;121m",
	"forest":    "\x1b[38;5;22m",
	"teal":      "\x1b[38;5;30m",
	"turquoise": "\x1b[38;5;80m",
	"sky":       "\x1b[38;5;117m",
	"azure":     "\x1b[38;5;45m",
	"sapphire":  "\x1b[38;5;25m",
	"royal":     "\x1b[38;5;63m",
	"navy":      "\x1b[38;5;17m",
	"steel":     "\x1b[38;5;67m",
	"indigo":    "\x1b[38;5;54m",
	"violet":    "\x1b[38;5;93m",
	"purple":    "\x1b[38;5;129m",
	"orchid":    "\x1b[38;5;170m",
	"plum":      "\x1b[38;5;96m",
	"lavender":  "\x1b[38;5;183m",
	"pink":      "\x1b[38;5;205m",
	"chocolate": "\x1b[38;5;166m",
	"tan":       "\x1b[38;5;180m",
	"beige":     "\x1b[38;5;230m",
	"snow":      "\x1b[38;5;255m",
	"pearl":     "\x1b[38;5;253m",
	"silver":    "\x1b[38;5;250m",
	"ash":       "\x1b[38;5;245m",
	"grey":      "\x1b[38;5;244m",
	"gray":      "\x1b[38;5;244m",
	"slate":     "\x1b[38;5;103m",
	"charcoal":  "\x1b[38;5;238m",

	// Status aliases.
	"success": "\x1b[38;5;10m",
	"error":   "\x1b[38;5;9m",
	"warning": "\x1b[38;5;214m",
	"info":    "\x1b[38;5;12m",
	"debug":   "\x1b[38;5;244m",
	"muted":   "\x1b[38;5;242m",
}

// Code returns the SGR escape sequence for a color name.
// The second return is false for names not in the palette.
func Code(name string) (string, bool) {
	code, ok := codes[name]
	return code, ok
}

// Known reports whether name resolves in the palette.
func Known(name string) bool {
	_, ok := codes[name]
	return ok
}

// Names returns every color name in the palette, unordered.
func Names() []string {
	names := make([]string, 0, len(codes))
	for name := range codes {
		names = append(names, name)
	}
	return names
}
