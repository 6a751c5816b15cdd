package server

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"

	"github.com/vcrobe/nojs-greeter/vdom"
)

// Prerender parses page, appends the HTML form of n inside the element whose id
// is mountID and returns the re-serialised document. The browser runtime clears
// the mount element on its first render, so the markup only covers the gap
// until the WASM module boots.
func Prerender(page []byte, mountID string, n *vdom.VNode) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	mount := findByID(doc, mountID)
	if mount == nil {
		return nil, fmt.Errorf("mount element #%s not found", mountID)
	}
	if node := vdom.ToHTMLNode(n); node != nil {
		mount.AppendChild(node)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
