//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures use the portable lanes at 128-bit width.
	setScalarMode()
}
