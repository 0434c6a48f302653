// Package version provides build version information embedding.
//
// Version, git commit, and build time are set at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/kyavuz/uakit/version.Version=1.0.0"
package version
