package autodetect

import (
	"regexp"
	"strings"
	"testing"
)

var sgr = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return sgr.ReplaceAllString(s, "")
}

func TestHighlight_URL(t *testing.T) {
	d, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := d.Highlight("see https://example.com/docs now")
	if !strings.Contains(got, "\U0001f517 ") {
		t.Error("missing URL icon")
	}
	if !strings.Contains(got, "https://example.com/docs") {
		t.Error("URL text dropped")
	}
	if !strings.Contains(got, "\x1b[0m") {
		t.Error("missing reset")
	}
}

func TestHighlight_Version(t *testing.T) {
	d, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := stripANSI(d.Highlight("release v2.3.1 is out"))
	// The capture group excludes the leading v.
	if !strings.Contains(got, "\U0001f3f7️ 2.3.1") {
		t.Errorf("Highlight() = %q, want tagged version", got)
	}
}

func TestHighlight_Path(t *testing.T) {
	d, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := d.Highlight("wrote /var/log/app.log today")
	if !strings.Contains(got, "\U0001f4c1 ") {
		t.Error("missing path icon")
	}
	if !strings.Contains(stripANSI(got), "/app.log") {
		t.Errorf("Highlight() = %q, want path span", got)
	}
}

func TestHighlight_AsciiFallbackIcons(t *testing.T) {
	d, err := New(false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := d.Highlight("fetch https://example.com v1.0.0")
	if !strings.Contains(got, "[URL]") || !strings.Contains(got, "[VER]") {
		t.Errorf("Highlight() = %q, want ASCII icons", got)
	}
}

func TestHighlight_AppliesAllThreeInOrder(t *testing.T) {
	d, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	line := "Deploying v2.3.1 to ~/app/config.yml https://example.com"
	got := d.Highlight(line)

	urlAt := strings.Index(got, "\U0001f517")
	verAt := strings.Index(got, "\U0001f3f7")
	pathAt := strings.Index(got, "\U0001f4c1")
	if urlAt < 0 || verAt < 0 || pathAt < 0 {
		t.Fatalf("Highlight() = %q, want all three icons", got)
	}
	// Spans keep their original relative positions.
	if !(verAt < pathAt && pathAt < urlAt) {
		t.Errorf("icon order wrong in %q", got)
	}
	// No double processing: exactly one reset per span.
	if n := strings.Count(got, "\x1b[0m"); n != 3 {
		t.Errorf("got %d resets, want 3 in %q", n, got)
	}
}

func TestHighlight_NoMatchesPassthrough(t *testing.T) {
	d, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	line := "nothing of interest here"
	if got := d.Highlight(line); got != line {
		t.Errorf("Highlight() = %q, want unchanged", got)
	}
}
