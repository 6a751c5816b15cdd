//go:build (js || wasm) && !dev
// +build js wasm
// +build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/nojs-greeter/console"
)

// callOnMount invokes the OnMount lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnMount(mounter Mounter, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error(fmt.Sprintf("OnMount panic in component %s: %v", key, rec))
		}
	}()
	mounter.OnMount()
}

// callOnUnmount invokes the OnUnmount lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnUnmount(unmounter Unmounter, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error(fmt.Sprintf("OnUnmount panic in component %s: %v", key, rec))
		}
	}()
	unmounter.OnUnmount()
}
