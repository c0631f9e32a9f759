package version

// Version is overridden at build time with -ldflags "-X fmcheck/internal/version.Version=...".
var Version = "dev"
