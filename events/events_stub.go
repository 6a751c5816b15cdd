//go:build !wasm
// +build !wasm

package events

// Stub file for non-WASM builds to allow components to compile and be tested natively.
// The actual implementation is in events_js.go with js/wasm build tags.

// AdaptNoArgEvent returns the handler unchanged in non-WASM builds.
func AdaptNoArgEvent(handler func()) func() {
	return handler
}

// AdaptChangeEvent returns the handler unchanged in non-WASM builds.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(ChangeEventArgs) {
	return handler
}
