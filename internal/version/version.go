package version

// Version is overridden at build time with -ldflags "-X barclash/internal/version.Version=...".
var Version = "dev"
