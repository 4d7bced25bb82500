//go:build lumadebug

package image

// debugChecks enables explicit index validation in Buffer accessors.
const debugChecks = true
