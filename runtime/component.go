package runtime

import "github.com/vcrobe/nojs-greeter/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// Mounter is implemented by components that need to run code once, before their first render.
type Mounter interface {
	OnMount()
}

// Unmounter is implemented by components that hold resources (timers, subscriptions)
// which must be released when the component leaves the page.
type Unmounter interface {
	OnUnmount()
}
