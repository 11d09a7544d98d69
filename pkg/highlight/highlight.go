// Package highlight applies theme-driven styling to lines of text.
//
// The engine picks one of four strategies at construction time and
// never re-evaluates per line: compiled (fast path), legacy (flat
// per-keyword matching built straight from the theme), auto-detection
// only, or passthrough. Compiled and legacy produce identical bytes for
// identical inputs; legacy exists so a theme that defeats compilation
// still degrades to working highlighting instead of none.
package highlight

import (
	"github.com/rs/zerolog/log"

	"github.com/dkoosis/hue/pkg/autodetect"
	"github.com/dkoosis/hue/pkg/theme"
)

// Kind identifies the strategy an engine selected.
type Kind int

const (
	Passthrough Kind = iota
	AutoOnly
	Legacy
	Compiled
)

func (k Kind) String() string {
	switch k {
	case Compiled:
		return "compiled"
	case Legacy:
		return "legacy"
	case AutoOnly:
		return "auto-only"
	default:
		return "passthrough"
	}
}

// Engine holds the strategy chosen at startup.
type Engine struct {
	kind     Kind
	filter   string
	compiled *theme.Compiled
	legacy   *legacyMatcher
	detector *autodetect.Detector
}

// New selects the best available strategy: compiled when the theme
// compiles, legacy when it does not, auto-detection only without a
// theme, passthrough without a detector either. Degradations are logged
// to stderr, never fatal.
func New(th *theme.Theme, filterName string, det *autodetect.Detector) *Engine {
	// Theme matchers only engage when a filter is selected; a bare
	// theme run highlights with the built-in detectors.
	if th == nil || filterName == "" {
		if det == nil {
			return &Engine{kind: Passthrough}
		}
		return &Engine{kind: AutoOnly, detector: det}
	}

	compiled, err := theme.Compile(th)
	if err == nil {
		return &Engine{kind: Compiled, filter: filterName, compiled: compiled}
	}
	log.Warn().Err(err).Msg("theme compilation failed, falling back to legacy matching")

	if legacy := newLegacyMatcher(th, filterName); legacy != nil {
		return &Engine{kind: Legacy, filter: filterName, legacy: legacy}
	}

	if det != nil {
		log.Warn().Msg("no usable theme patterns, falling back to auto-detection only")
		return &Engine{kind: AutoOnly, detector: det}
	}
	return &Engine{kind: Passthrough}
}

// Kind reports the selected strategy.
func (e *Engine) Kind() Kind {
	return e.kind
}

// Checksum returns the compiled theme's checksum, or zero when the
// engine is not running the compiled strategy.
func (e *Engine) Checksum() uint64 {
	if e.compiled != nil {
		return e.compiled.Checksum
	}
	return 0
}

// Apply highlights one line.
func (e *Engine) Apply(line string) string {
	switch e.kind {
	case Compiled:
		return e.compiled.Process(line, e.filter)
	case Legacy:
		return e.legacy.process(line)
	case AutoOnly:
		return e.detector.Highlight(line)
	default:
		return line
	}
}
