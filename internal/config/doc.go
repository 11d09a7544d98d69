// Package config resolves hue's runtime settings.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest):
//
//  1. CLI flags (-theme, -filter, -width, -align, -no-color, -debug)
//  2. Environment variables (HUE_NO_COLOR, NO_COLOR, HUE_DEBUG)
//  3. YAML config file (.hue.yaml in the working directory, then
//     $XDG_CONFIG_HOME/hue/.hue.yaml)
//  4. Defaults
//
// # Key Options
//
//   - Theme: theme name or path; empty selects the embedded default
//   - Filter: which of the theme's filters to apply; empty applies none
//   - Width/Align: fixed output width and alignment (left/center/right)
//   - NoColor: strip templates, skip all highlighting
//   - Debug: verbose diagnostics on stderr
//
// # Environment Variables
//
//   - HUE_NO_COLOR or NO_COLOR: any non-empty value disables colors
//   - HUE_DEBUG: any non-empty value enables debug diagnostics
package config
