//go:build !wasm
// +build !wasm

package console

// Stub file for non-WASM builds so components and the server-side prerender compile.
// The actual implementation is in console.go with js/wasm build tags.

// Log is a no-op in non-WASM builds.
func Log(args ...any) {}

// Warn is a no-op in non-WASM builds.
func Warn(args ...any) {}

// Error is a no-op in non-WASM builds.
func Error(args ...any) {}
