// Package buildinfo exposes build-time information injected via ldflags:
//
//   - Version: release version (e.g., "0.1")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version, read from the binary when not set
//
// Usage:
//
//	go build -ldflags "-X github.com/yndnr/fsm-go/internal/infra/buildinfo.Version=0.2" ./cmd/fsm
package buildinfo
