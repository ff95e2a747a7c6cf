// Package version exposes the build version, overridable at link time via
// -ldflags "-X github.com/nemesix/nemesis-cli/internal/version.Version=...".
package version

var Version = "dev"
