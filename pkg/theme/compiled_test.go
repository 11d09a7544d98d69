package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_When_ValidTheme(t *testing.T) {
	c, err := Compile(testTheme())
	require.NoError(t, err)
	require.Len(t, c.AutoDetection, 1)
	assert.Equal(t, "errors", c.AutoDetection[0].Name)
	require.Contains(t, c.Filters, "deploy")
	assert.Len(t, c.Filters["deploy"].Groups, 2)
	assert.NotNil(t, c.Filters["deploy"].anyKeyword)
}

func TestCompile_When_MalformedPattern(t *testing.T) {
	th := testTheme()
	th.AutoDetection["broken"] = Detection{Pattern: `[unclosed`, Color: "red"}
	_, err := Compile(th)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestCaptureWrap(t *testing.T) {
	assert.Equal(t, `(\d+)`, captureWrap(`\d+`))
	// Patterns that already capture are left alone.
	assert.Equal(t, `ERROR (\d+)`, captureWrap(`ERROR (\d+)`))
}

func TestGroupPattern_PhrasesAndTokens(t *testing.T) {
	p := GroupPattern([]string{"failed", "fatal error", "exit:1"})
	assert.Equal(t, `(?i)(\bfailed\b|fatal error|exit:1)`, p)
}

func TestProcess_KeywordStyling(t *testing.T) {
	c, err := Compile(testTheme())
	require.NoError(t, err)

	got := c.Process("build failed today", "deploy")
	assert.Equal(t, "build \x1b[38;5;196m\x1b[1mfailed\x1b[0m today", got)
}

func TestProcess_KeywordsAreCaseInsensitive(t *testing.T) {
	c, err := Compile(testTheme())
	require.NoError(t, err)

	got := c.Process("FAILED", "deploy")
	assert.Equal(t, "\x1b[38;5;196m\x1b[1mFAILED\x1b[0m", got)
}

func TestProcess_PhraseKeywordMatchesWithoutBoundaries(t *testing.T) {
	c, err := Compile(testTheme())
	require.NoError(t, err)

	got := c.Process("a fatal error occurred", "deploy")
	assert.Contains(t, got, "\x1b[38;5;196m\x1b[1mfatal error\x1b[0m")
}

func TestProcess_IconSubstitution(t *testing.T) {
	c, err := Compile(testTheme())
	require.NoError(t, err)

	got := c.Process("status :critical: now", "deploy")
	assert.Equal(t, "status \x1b[38;5;196m\U0001f525 critical\x1b[0m now", got)
}

func TestProcess_UnmappedIconWordStaysLiteral(t *testing.T) {
	c, err := Compile(testTheme())
	require.NoError(t, err)

	got := c.Process("status :mystery: now", "deploy")
	assert.Contains(t, got, ":mystery:")
}

func TestProcess_AutoDetectionWithCaptureExtraction(t *testing.T) {
	th := testTheme()
	// No capture group in the source: the compiler wraps it.
	th.AutoDetection = map[string]Detection{
		"codes": {Pattern: `E\d{4}`, Color: "amber", Bold: true},
	}
	c, err := Compile(th)
	require.NoError(t, err)

	got := c.Process("lint: E0425 unresolved", "deploy")
	assert.Contains(t, got, "\x1b[38;5;214m\x1b[1mE0425\x1b[0m")
}

func TestProcess_UnknownFilterSkipsFilterStages(t *testing.T) {
	c, err := Compile(testTheme())
	require.NoError(t, err)

	line := "no :critical: styling failed"
	got := c.Process(line, "absent")
	assert.Equal(t, line, got)
}

func TestChecksum_StableAcrossCalls(t *testing.T) {
	a := Checksum(testTheme())
	b := Checksum(testTheme())
	assert.Equal(t, a, b)
}

func TestChecksum_MatchesCompiledField(t *testing.T) {
	th := testTheme()
	c, err := Compile(th)
	require.NoError(t, err)
	assert.Equal(t, Checksum(th), c.Checksum)
}

func TestChecksum_SensitiveToEveryField(t *testing.T) {
	base := Checksum(testTheme())

	mutations := map[string]func(*Theme){
		"metadata name":    func(th *Theme) { th.Metadata.Name = "other" },
		"metadata version": func(th *Theme) { th.Metadata.Version = "9.9.9" },
		"detection pattern": func(th *Theme) {
			d := th.AutoDetection["errors"]
			d.Pattern = `WARN`
			th.AutoDetection["errors"] = d
		},
		"detection color": func(th *Theme) {
			d := th.AutoDetection["errors"]
			d.Color = "blue"
			th.AutoDetection["errors"] = d
		},
		"icon glyph": func(th *Theme) {
			f := th.Filters["deploy"]
			f.IconMappings["critical"] = IconMapping{Icon: "!", Color: "crimson"}
		},
		"keyword added": func(th *Theme) {
			f := th.Filters["deploy"]
			g := f.Styles["bad"]
			g.Keywords = append(g.Keywords, "broken")
			f.Styles["bad"] = g
		},
		"group color": func(th *Theme) {
			f := th.Filters["deploy"]
			g := f.Styles["good"]
			g.Color = "lime"
			f.Styles["good"] = g
		},
	}

	for name, mutate := range mutations {
		th := testTheme()
		mutate(th)
		assert.NotEqual(t, base, Checksum(th), "mutation %q must change checksum", name)
	}
}

func TestChecksum_IndependentOfDeclarationOrder(t *testing.T) {
	// Two themes with identical content built in different insertion
	// orders must hash identically.
	a := testTheme()

	b := testTheme()
	b.Filters = map[string]Filter{}
	f := Filter{
		IconMappings: map[string]IconMapping{},
		Styles:       map[string]StyleGroup{},
	}
	f.Styles["good"] = StyleGroup{Keywords: []string{"ok", "passed"}, Color: "emerald"}
	f.Styles["bad"] = StyleGroup{Keywords: []string{"failed", "fatal error"}, Color: "crimson", Bold: true}
	f.IconMappings["critical"] = IconMapping{Icon: "\U0001f525", Color: "crimson"}
	b.Filters["deploy"] = f

	assert.Equal(t, Checksum(a), Checksum(b))
}

func TestIconToken_Shape(t *testing.T) {
	re := IconToken()
	assert.True(t, re.MatchString(":word:"))
	assert.True(t, re.MatchString(":w_2:"))
	assert.False(t, re.MatchString(":2bad:"))
	assert.False(t, strings.Contains(re.FindString("a : b"), ":"))
}
