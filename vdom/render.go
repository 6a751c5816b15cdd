//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-greeter/console"
)

// supportedTags lists the elements createElement knows how to build.
var supportedTags = map[string]bool{
	"div": true, "p": true, "span": true, "label": true, "button": true,
	"input": true, "img": true, "textarea": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "footer": true, "main": true, "section": true, "nav": true,
}

// listener is what a VNode records for every DOM event listener it attached.
type listener struct {
	event string
	fn    js.Func
}

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if l, ok := cb.(listener); ok {
			l.fn.Release()
		}
	}
	v.ClearEventCallbacks()
}

// detachListeners removes v's listeners from el and releases them.
func detachListeners(el js.Value, v *VNode) {
	for _, cb := range v.GetEventCallbacks() {
		if l, ok := cb.(listener); ok {
			el.Call("removeEventListener", l.event, l.fn)
		}
	}
	releaseCallbacks(v)
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

func mountElement(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined()
	}
	return mount
}

// Clear empties the mount element and releases the callbacks of prevVDOM.
// It also removes markup prerendered by the server.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount := mountElement(selector)
	if !mount.Truthy() {
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount := mountElement(selector)
	if !mount.Truthy() {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers correctly.
func setAttributeValue(el js.Value, key string, value any) {
	if IsEventKey(key) {
		return
	}

	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		return
	}

	el.Call("setAttribute", key, value)
}

// attachEventListeners wires every func(js.Value) found under an "on*" key.
// The VNode keeps the js.Func objects for later cleanup.
func attachEventListeners(el js.Value, vnode *VNode) {
	for key, value := range vnode.Attributes {
		if !IsEventKey(key) {
			continue
		}
		handler, ok := value.(func(js.Value))
		if !ok {
			console.Warn("Ignoring event handler with unsupported signature:", key)
			continue
		}

		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				handler(args[0])
			}
			return nil
		})
		event := EventName(key)
		el.Call("addEventListener", event, cb)
		vnode.AddEventCallback(listener{event: event, fn: cb})
	}
}

// hasValueAttribute reports whether the value is carried as an attribute (button inputs)
// rather than as live input state in Content.
func hasValueAttribute(n *VNode) bool {
	_, ok := n.Attributes["value"]
	return ok
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	// Empty text nodes are still created so DOM child indexes line up with the VDOM.
	if n.Tag == TextTag {
		return doc.Call("createTextNode", n.Content)
	}

	if !supportedTags[n.Tag] {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n)

	switch n.Tag {
	case "input", "textarea":
		if n.Content != "" && !hasValueAttribute(n) {
			el.Set("value", n.Content)
		}
		return el
	case "img":
		return el
	}

	if n.Content != "" && len(n.Children) == 0 {
		el.Set("textContent", n.Content)
	}
	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}
	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount := mountElement(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	if parent := domElement.Get("parentNode"); parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.ComponentKey != "" && newVNode.ComponentKey != "" && oldVNode.ComponentKey != newVNode.ComponentKey {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// Handlers are closures over the new render, so listeners are always swapped.
	detachListeners(domElement, oldVNode)
	attachEventListeners(domElement, newVNode)

	switch newVNode.Tag {
	case "input", "textarea":
		if hasValueAttribute(newVNode) {
			return
		}
		// Leave the value alone while the user is typing into the element.
		isFocused := domElement.Call("matches", ":focus")
		if !isFocused.Bool() && domElement.Get("value").String() != newVNode.Content {
			domElement.Set("value", newVNode.Content)
		}
		return
	case "img":
		return
	}

	// Setting textContent wipes out all child nodes, so only do it for leaf elements.
	if len(newVNode.Children) == 0 && len(oldVNode.Children) == 0 {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("textContent", newVNode.Content)
		}
		return
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists && !IsEventKey(key) {
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		if IsEventKey(key) {
			continue
		}
		if oldAttrs == nil || oldAttrs[key] != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])

		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
