package testcomponents

import (
	"sync"

	"github.com/vcrobe/nojs-greeter/runtime"
	"github.com/vcrobe/nojs-greeter/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
//
// Components may call StateHasChanged from goroutines (network completions,
// timer ticks), so every access goes through a mutex.
type TestRenderer struct {
	mu          sync.Mutex
	currentVDOM *vdom.VNode
	component   runtime.Component
	renders     int
	mounted     bool
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component, calling OnMount first
// when the component implements runtime.Mounter.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.mu.Lock()
	first := !r.mounted
	r.mounted = true
	r.mu.Unlock()

	if first {
		if mounter, ok := r.component.(runtime.Mounter); ok {
			mounter.OnMount()
		}
	}
	r.ReRender()
	return r.GetCurrentVDOM()
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	vnode := r.component.Render(r)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentVDOM = vnode
	r.renders++
}

// Unmount calls OnUnmount when the component implements runtime.Unmounter.
func (r *TestRenderer) Unmount() {
	r.mu.Lock()
	wasMounted := r.mounted
	r.mounted = false
	r.mu.Unlock()

	if !wasMounted {
		return
	}
	if unmounter, ok := r.component.(runtime.Unmounter); ok {
		unmounter.OnUnmount()
	}
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentVDOM
}

// RenderCount returns how many times the component has been rendered.
func (r *TestRenderer) RenderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}
