package version

// Set at build time via -ldflags "-X github.com/mj1618/dashpanel/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
