//go:build js || wasm
// +build js wasm

package runtime

import (
	"sync"

	"github.com/vcrobe/nojs-greeter/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl renders one root component into a mount element and keeps the
// previous VDOM tree so later renders only patch what changed.
type RendererImpl struct {
	mu               sync.Mutex
	currentComponent Component
	currentKey       string
	mounted          bool
	mountID          string
	prevVDOM         *vdom.VNode

	// Re-entrant ReRender calls (StateHasChanged from inside OnMount or Render)
	// are folded into one extra pass instead of recursing.
	rendering bool
	dirty     bool
}

// NewRenderer creates a renderer that mounts under the element matching mountID (a CSS selector).
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{mountID: mountID}
}

// SetCurrentComponent sets the component to be rendered. A previously mounted
// component receives OnUnmount.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	r.mu.Lock()
	prev, wasMounted := r.currentComponent, r.mounted
	r.currentComponent = comp
	r.currentKey = key
	r.mounted = false
	r.mu.Unlock()

	if wasMounted && prev != nil && prev != comp {
		if unmounter, ok := prev.(Unmounter); ok {
			r.callOnUnmount(unmounter, key)
		}
	}
}

// ReRender runs the render cycle for the current component.
func (r *RendererImpl) ReRender() {
	r.mu.Lock()
	if r.rendering {
		r.dirty = true
		r.mu.Unlock()
		return
	}
	r.rendering = true
	r.mu.Unlock()

	for {
		r.renderRoot()

		r.mu.Lock()
		if !r.dirty {
			r.rendering = false
			r.mu.Unlock()
			return
		}
		r.dirty = false
		r.mu.Unlock()
	}
}

func (r *RendererImpl) renderRoot() {
	r.mu.Lock()
	comp, key, mounted := r.currentComponent, r.currentKey, r.mounted
	r.mounted = comp != nil
	r.mu.Unlock()

	if comp == nil {
		return
	}

	comp.SetRenderer(r)
	if !mounted {
		if mounter, ok := comp.(Mounter); ok {
			r.callOnMount(mounter, key)
		}
	}

	newVDOM := comp.Render(r)
	if newVDOM == nil {
		return
	}
	newVDOM.ComponentKey = key

	if !mounted || r.prevVDOM == nil {
		// Initial render: drop whatever is in the mount point, prerendered markup included.
		vdom.Clear(r.mountID, r.prevVDOM)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	r.prevVDOM = newVDOM
}

// Unmount calls OnUnmount on the current component and empties the mount element.
func (r *RendererImpl) Unmount() {
	r.mu.Lock()
	comp, key, mounted := r.currentComponent, r.currentKey, r.mounted
	r.mounted = false
	prev := r.prevVDOM
	r.prevVDOM = nil
	r.mu.Unlock()

	if !mounted || comp == nil {
		return
	}
	if unmounter, ok := comp.(Unmounter); ok {
		r.callOnUnmount(unmounter, key)
	}
	vdom.Clear(r.mountID, prev)
}
