package vdom

// TextTag is the tag of a bare text node. It renders as a DOM Text node with no wrapper element.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag          string         // The HTML tag name
	Attributes   map[string]any // The attributes of the node, event handlers included under "on*" keys
	Children     []*VNode       // The child nodes
	Content      string         // Text content, or the value of an input
	ComponentKey string         // Identifies the component that produced this subtree

	// js.Func values attached to the DOM element, kept untyped so this file has no build tags.
	eventCallbacks []any
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// AddEventCallback records a callback so it can be released when the node is discarded.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the callbacks recorded on this node.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks forgets all recorded callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Handler returns the event handler stored under key ("onClick", "onInput", ...), or nil.
func (v *VNode) Handler(key string) any {
	if v == nil || v.Attributes == nil {
		return nil
	}
	return v.Attributes[key]
}

// Class returns the node's class attribute, or "" if unset.
func (v *VNode) Class() string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	class, _ := v.Attributes["class"].(string)
	return class
}

// Find returns the first node in the tree, in depth-first order, for which match is true.
func (v *VNode) Find(match func(*VNode) bool) *VNode {
	if v == nil {
		return nil
	}
	if match(v) {
		return v
	}
	for _, child := range v.Children {
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindByClass returns the first node whose class attribute equals class.
func (v *VNode) FindByClass(class string) *VNode {
	return v.Find(func(n *VNode) bool { return n.Class() == class })
}

// Text creates a bare text node.
func Text(text string) *VNode {
	return NewVNode(TextTag, nil, nil, text)
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// InputText returns a VNode representing an <input type="text"> element.
// The value is carried in Content.
func InputText(value string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "text"
	return NewVNode("input", attrs, nil, value)
}

// InputButton returns a VNode representing an <input type="button"> whose label is value.
func InputButton(value string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "button"
	attrs["value"] = value
	return NewVNode("input", attrs, nil, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// TextDiv creates a <div> VNode holding only text.
func TextDiv(text string, attrs map[string]any) *VNode {
	return NewVNode("div", attrs, nil, text)
}

// Header creates a <header> VNode.
func Header(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("header", attrs, children, "")
}

// H1 creates an <h1> VNode.
func H1(text string, attrs map[string]any) *VNode {
	return NewVNode("h1", attrs, nil, text)
}

// Img creates an <img> VNode.
func Img(src, alt string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["src"] = src
	attrs["alt"] = alt
	return NewVNode("img", attrs, nil, "")
}

// Label creates a <label> VNode. Use Text children for the caption.
func Label(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("label", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// IsEventKey reports whether an attribute key names an event handler ("onClick", "onInput").
func IsEventKey(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}

// EventName converts "onClick" to "click", "onInput" to "input".
func EventName(key string) string {
	name := key[2:]
	if name[0] >= 'A' && name[0] <= 'Z' {
		name = string(name[0]+('a'-'A')) + name[1:]
	}
	return name
}
