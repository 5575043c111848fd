// Package version holds build information injected via ldflags:
//
//	go build -ldflags "-X github.com/mj1618/workspace-output/internal/version.Version=v1.0.0"
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
