// Package version reports build metadata for netlayer binaries.
//
// Values are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/netlayer/version.Version=1.2.0" ./cmd/netlayer
package version
