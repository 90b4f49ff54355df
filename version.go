package main

// Version information reported by GET /health, overridable at build time:
//
//	go build -ldflags "-X main.Version=1.2.3 -X main.GitCommit=$(git rev-parse --short HEAD)"
var (
	// Version is the semantic version of itemsvc.
	Version = "0.1.0"

	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "unknown"

	// BuildDate is the build date.
	BuildDate = "unknown"
)
