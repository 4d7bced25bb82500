//go:build !lumadebug

package image

const debugChecks = false
