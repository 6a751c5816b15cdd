package vdom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTMLNode converts a VNode tree into an html.Node tree that can be spliced into a
// parsed document. Event handlers are dropped. An input's Content becomes its value
// attribute unless the node already carries one.
func ToHTMLNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}

	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n),
	}

	switch n.Tag {
	case "input", "img":
		return node
	case "textarea":
		if n.Content != "" {
			node.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
		}
		return node
	}

	if n.Content != "" && len(n.Children) == 0 {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if c := ToHTMLNode(child); c != nil {
			node.AppendChild(c)
		}
	}
	return node
}

// RenderHTML writes the HTML serialisation of n to w.
func RenderHTML(w io.Writer, n *VNode) error {
	node := ToHTMLNode(n)
	if node == nil {
		return nil
	}
	return html.Render(w, node)
}

// HTMLString is RenderHTML into a string.
func HTMLString(n *VNode) (string, error) {
	var sb strings.Builder
	if err := RenderHTML(&sb, n); err != nil {
		return "", fmt.Errorf("render %q: %w", n.Tag, err)
	}
	return sb.String(), nil
}

func htmlAttributes(n *VNode) []html.Attribute {
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		if IsEventKey(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]html.Attribute, 0, len(keys)+1)
	for _, k := range keys {
		switch v := n.Attributes[k].(type) {
		case bool:
			if v {
				attrs = append(attrs, html.Attribute{Key: k})
			}
		default:
			attrs = append(attrs, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		}
	}

	if n.Tag == "input" && n.Content != "" {
		if _, ok := n.Attributes["value"]; !ok {
			attrs = append(attrs, html.Attribute{Key: "value", Val: n.Content})
		}
	}
	return attrs
}
