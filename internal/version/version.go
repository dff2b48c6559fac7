package version

// Name is the application name shown by -version.
const Name = "pomodoro-widget"

// Set at build time via -ldflags "-X .../internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info returns "<version> (<commit>)"
func Info() string {
	return Version + " (" + Commit + ")"
}

// Full returns the version line printed by -version.
func Full() string {
	return Name + " " + Version + " (commit: " + Commit + ", built: " + BuildTime + ")"
}
