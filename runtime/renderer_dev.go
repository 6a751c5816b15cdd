//go:build (js || wasm) && dev
// +build js wasm
// +build dev

package runtime

// callOnMount invokes the OnMount lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func (r *RendererImpl) callOnMount(mounter Mounter, key string) {
	mounter.OnMount()
}

// callOnUnmount invokes the OnUnmount lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func (r *RendererImpl) callOnUnmount(unmounter Unmounter, key string) {
	unmounter.OnUnmount()
}
