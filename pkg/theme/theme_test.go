package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTheme() *Theme {
	return &Theme{
		Metadata: Metadata{Name: "test", Version: "1.0.0", Description: "test theme"},
		AutoDetection: map[string]Detection{
			"errors": {Pattern: `ERROR\s+\d+`, Color: "crimson", Bold: true},
		},
		Filters: map[string]Filter{
			"deploy": {
				IconMappings: map[string]IconMapping{
					"critical": {Icon: "\U0001f525", Color: "crimson"},
				},
				Styles: map[string]StyleGroup{
					"bad":  {Keywords: []string{"failed", "fatal error"}, Color: "crimson", Bold: true},
					"good": {Keywords: []string{"ok", "passed"}, Color: "emerald"},
				},
			},
		},
	}
}

func TestApplyInheritance_When_NoDefaults(t *testing.T) {
	th := testTheme()
	th.applyInheritance()
	assert.Len(t, th.Filters, 1)
	assert.Len(t, th.AutoDetection, 1)
}

func TestApplyInheritance_When_DefaultsFillGaps(t *testing.T) {
	th := testTheme()
	th.Defaults = &Defaults{
		AutoDetection: map[string]Detection{
			"errors": {Pattern: "should-not-win", Color: "blue"},
			"warns":  {Pattern: `WARN`, Color: "amber"},
		},
		Filters: map[string]Filter{
			"deploy": {
				IconMappings: map[string]IconMapping{
					"critical": {Icon: "x", Color: "blue"}, // user entry wins
					"rocket":   {Icon: "\U0001f680", Color: "royal"},
				},
				Styles: map[string]StyleGroup{
					"bad":  {Keywords: []string{"should-not-win"}, Color: "blue"},
					"meh":  {Keywords: []string{"skipped"}, Color: "grey"},
				},
			},
			"build": {
				Styles: map[string]StyleGroup{
					"status": {Keywords: []string{"compiling"}, Color: "azure"},
				},
			},
		},
	}
	th.applyInheritance()

	// User-declared entries always win at the same key.
	assert.Equal(t, `ERROR\s+\d+`, th.AutoDetection["errors"].Pattern)
	assert.Equal(t, "\U0001f525", th.Filters["deploy"].IconMappings["critical"].Icon)
	assert.Equal(t, []string{"failed", "fatal error"}, th.Filters["deploy"].Styles["bad"].Keywords)

	// Keys present only in defaults appear in the merged result.
	assert.Contains(t, th.AutoDetection, "warns")
	assert.Contains(t, th.Filters["deploy"].IconMappings, "rocket")
	assert.Contains(t, th.Filters["deploy"].Styles, "meh")
	require.Contains(t, th.Filters, "build")
	assert.Contains(t, th.Filters["build"].Styles, "status")
}

func TestIconFor_When_Mapped(t *testing.T) {
	th := testTheme()
	m, ok := th.IconFor("deploy", "critical")
	require.True(t, ok)
	assert.Equal(t, "\U0001f525", m.Icon)
}

func TestIconFor_When_UnknownFilterOrWord(t *testing.T) {
	th := testTheme()
	_, ok := th.IconFor("nope", "critical")
	assert.False(t, ok)
	_, ok = th.IconFor("deploy", "nope")
	assert.False(t, ok)
}

func TestIconMapping_Formatted(t *testing.T) {
	m := IconMapping{Icon: "\U0001f525", Color: "crimson"}
	got := m.Formatted("critical")
	assert.Equal(t, "\x1b[38;5;196m\U0001f525 critical\x1b[0m", got)
}

func TestDefault_IsMinimal(t *testing.T) {
	th := Default()
	assert.Equal(t, "hue-minimal", th.Metadata.Name)
	assert.Empty(t, th.Filters)
	assert.Empty(t, th.AutoDetection)
}
