// Package version reports the build identity of the vmcore module.
//
// Values are set at link time via -ldflags and otherwise filled from the
// embedded module build info:
//
//	go build -ldflags "-X github.com/kbukum/vmcore/version.Version=1.2.0"
package version
