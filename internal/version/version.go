// Package version holds the aiproxy build version.
package version

// Version is the current release version. Overridden at build time via
// -ldflags "-X github.com/nilmandal/aiproxy/internal/version.Version=...".
var Version = "0.2.0"
