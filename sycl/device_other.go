//go:build !amd64 && !arm64

package sycl

func init() {
	// No feature detection on other architectures; the 16-byte default
	// width stands.
	cpuFeatures = nil
}
