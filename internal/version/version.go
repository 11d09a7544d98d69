package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns a single-line version banner for the -version flag.
func String() string {
	return fmt.Sprintf("hue %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
