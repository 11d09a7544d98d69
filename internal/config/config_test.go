package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty directory and points the XDG
// config home at another, so a developer's own .hue.yaml never leaks
// into assertions.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		xdg.Reload()
	})
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	return dir
}

func TestResolve_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HUE_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("HUE_DEBUG", "")

	s, err := Resolve(Flags{})
	require.NoError(t, err)
	assert.Equal(t, "left", s.Align)
	assert.Zero(t, s.Width)
	assert.False(t, s.NoColor)
}

func TestResolve_FileProvidesValues(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("HUE_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hue.yaml"),
		[]byte("theme: rebel\nfilter: deploy\nwidth: 100\nalign: center\n"), 0o644))

	s, err := Resolve(Flags{})
	require.NoError(t, err)
	assert.Equal(t, "rebel", s.Theme)
	assert.Equal(t, "deploy", s.Filter)
	assert.Equal(t, 100, s.Width)
	assert.Equal(t, "center", s.Align)
}

func TestResolve_FlagsBeatFileAndEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hue.yaml"),
		[]byte("theme: rebel\nwidth: 100\n"), 0o644))
	t.Setenv("HUE_NO_COLOR", "1")

	s, err := Resolve(Flags{
		Theme: "other", ThemeSet: true,
		Width: 42, WidthSet: true,
		NoColor: false, NoColorSet: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "other", s.Theme)
	assert.Equal(t, 42, s.Width)
	assert.False(t, s.NoColor, "explicit flag beats environment")
}

func TestResolve_EnvBeatsFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hue.yaml"),
		[]byte("no_color: false\n"), 0o644))
	t.Setenv("NO_COLOR", "1")

	s, err := Resolve(Flags{})
	require.NoError(t, err)
	assert.True(t, s.NoColor)
}

func TestResolve_MalformedFileIsError(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hue.yaml"),
		[]byte("width: [nope"), 0o644))

	_, err := Resolve(Flags{})
	require.Error(t, err)
}
