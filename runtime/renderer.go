package runtime

// Renderer defines the runtime operations available to components.
// This interface has NO build tags so the browser renderer and the in-memory
// test renderer are interchangeable.
type Renderer interface {
	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}
