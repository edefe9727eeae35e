// Package version holds build metadata set with -ldflags.
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/bnema/digital-prison-cli/internal/version.Version=v1.2.3" ./cmd/prison
var Version = "dev"
