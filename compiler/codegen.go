package compiler

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/vcrobe/nojs-greeter/events"
)

// generator turns one parsed template into the Render method of its component.
type generator struct {
	comp          componentInfo
	src           string
	frameworkPath string

	usesFmt    bool
	usesLo     bool
	usesEvents bool
	usesState  bool
}

// binding is one {…} expression found in a text node or attribute value.
type binding struct {
	start, end int
	verb       string
	expr       string
}

func (g *generator) dataReceiver() string {
	if g.comp.Schema.StateType != "" {
		g.usesState = true
		return "s"
	}
	return "c"
}

// file renders the complete generated Go file for root.
func (g *generator) file(root *html.Node) ([]byte, error) {
	body, err := g.node(root)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by nojs-compiler from %s. DO NOT EDIT.\n\n", templateName(g.comp.Path))
	fmt.Fprintf(&buf, "package %s\n\n", g.comp.PackageName)

	buf.WriteString("import (\n")
	if g.usesFmt {
		buf.WriteString("\t\"fmt\"\n\n")
	}
	imports := []string{
		g.frameworkPath + "/runtime",
		g.frameworkPath + "/vdom",
	}
	if g.usesLo {
		imports = append(imports, "github.com/samber/lo")
	}
	if g.usesEvents {
		imports = append(imports, g.frameworkPath+"/events")
	}
	slices.Sort(imports)
	for _, imp := range imports {
		fmt.Fprintf(&buf, "\t%q\n", imp)
	}
	buf.WriteString(")\n\n")

	buf.WriteString("// Render implements runtime.Component.\n")
	fmt.Fprintf(&buf, "func (c *%s) Render(r runtime.Renderer) *vdom.VNode {\n", g.comp.PascalName)
	if g.usesState {
		buf.WriteString("\ts := c.State()\n\n")
	}
	fmt.Fprintf(&buf, "\treturn %s\n}\n", body)

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code for %s: %w", g.comp.PascalName, err)
	}
	return out, nil
}

func (g *generator) node(n *html.Node) (string, error) {
	tag := n.Data
	if !supportedTags[tag] {
		return "", g.errorf("<"+tag, "unsupported element <%s>", tag)
	}

	attrs, err := g.attributes(n)
	if err != nil {
		return "", err
	}

	if voidElements[tag] {
		return fmt.Sprintf("vdom.NewVNode(%q, %s, nil, \"\")", tag, attrs), nil
	}

	// Text-only elements keep their text as Content.
	if len(elementChildren(n)) == 0 {
		var text strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				text.WriteString(c.Data)
			}
		}
		content := `""`
		if t := strings.TrimSpace(text.String()); t != "" {
			if content, err = g.text(t); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("vdom.NewVNode(%q, %s, nil, %s)", tag, attrs, content), nil
	}

	var children []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			t := strings.TrimSpace(c.Data)
			if t == "" {
				continue
			}
			expr, err := g.text(t)
			if err != nil {
				return "", err
			}
			children = append(children, fmt.Sprintf("vdom.Text(%s)", expr))
		case html.ElementNode:
			child, err := g.node(c)
			if err != nil {
				return "", err
			}
			children = append(children, child)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "vdom.NewVNode(%q, %s, []*vdom.VNode{\n", tag, attrs)
	for _, child := range children {
		sb.WriteString(child)
		sb.WriteString(",\n")
	}
	sb.WriteString("}, \"\")")
	return sb.String(), nil
}

// attributes renders the attribute map literal of an element, event handlers included.
func (g *generator) attributes(n *html.Node) (string, error) {
	if len(n.Attr) == 0 {
		return "nil", nil
	}

	entries := make([]string, 0, len(n.Attr))
	for _, a := range n.Attr {
		if event, ok := strings.CutPrefix(a.Key, "@"); ok {
			entry, err := g.eventHandler(n.Data, event, a.Val)
			if err != nil {
				return "", err
			}
			entries = append(entries, entry)
			continue
		}

		if m := booleanShorthandRegex.FindStringSubmatch(a.Val); m != nil && standardBooleanAttrs[a.Key] {
			cond, err := g.condition(m[1] == "!", m[2], a.Val)
			if err != nil {
				return "", err
			}
			entries = append(entries, fmt.Sprintf("%q: %s", a.Key, cond))
			continue
		}

		value, err := g.text(a.Val)
		if err != nil {
			return "", err
		}
		entries = append(entries, fmt.Sprintf("%q: %s", a.Key, value))
	}
	return "map[string]any{" + strings.Join(entries, ", ") + "}", nil
}

func (g *generator) eventHandler(tag, event, handler string) (string, error) {
	needle := "@" + event
	sig, ok := events.GetEventSignature(event)
	if !ok {
		return "", g.errorf(needle, "unknown event '@%s', supported: %s", event, strings.Join(events.SupportedEvents(), ", "))
	}
	if !events.IsEventSupported(event, tag) {
		return "", g.errorf(needle, "event '@%s' is not supported on <%s>, supported on: %v", event, tag, sig.SupportedTags)
	}

	method, ok := g.comp.Schema.Methods[handler]
	if !ok {
		return "", g.errorf(needle, "handler method '%s' not found on component '%s', available: %s",
			handler, g.comp.PascalName, methodNames(g.comp.Schema.Methods))
	}

	if sig.RequiresArgs() {
		if len(method.Params) != 1 || method.Params[0].Type != sig.ArgsType {
			return "", g.errorf(needle, "handler '%s' for '@%s' must be func(c *%s) %s(e %s)",
				handler, event, g.comp.PascalName, handler, sig.ArgsType)
		}
	} else if len(method.Params) != 0 {
		return "", g.errorf(needle, "handler '%s' for '@%s' must be func(c *%s) %s()",
			handler, event, g.comp.PascalName, handler)
	}

	g.usesEvents = true
	return fmt.Sprintf("%q: %s(c.%s)", jsEventKey(event), sig.Adapter, method.Name), nil
}

// text turns a text node or attribute value with {Field} and {Cond ? 'a' : 'b'}
// expressions into a Go string expression.
func (g *generator) text(text string) (string, error) {
	if m := unsupportedDirectiveRegex.FindString(text); m != "" {
		return "", g.errorf(m, "template directive %s} is not supported", m)
	}

	var bindings []binding
	for _, loc := range ternaryExprRegex.FindAllStringSubmatchIndex(text, -1) {
		negated := text[loc[2]:loc[3]] == "!"
		cond, err := g.condition(negated, text[loc[4]:loc[5]], text[loc[0]:loc[1]])
		if err != nil {
			return "", err
		}
		g.usesLo = true
		bindings = append(bindings, binding{
			start: loc[0],
			end:   loc[1],
			verb:  "%s",
			expr:  fmt.Sprintf("lo.Ternary(%s, %q, %q)", cond, text[loc[6]:loc[7]], text[loc[8]:loc[9]]),
		})
	}
	for _, loc := range dataBindingRegex.FindAllStringSubmatchIndex(text, -1) {
		name := text[loc[2]:loc[3]]
		field, err := g.field(name, text[loc[0]:loc[1]])
		if err != nil {
			return "", err
		}
		bindings = append(bindings, binding{
			start: loc[0],
			end:   loc[1],
			verb:  "%v",
			expr:  fmt.Sprintf("%s.%s", g.dataReceiver(), field.Name),
		})
		if field.GoType == "string" && loc[0] == 0 && loc[1] == len(text) {
			return bindings[len(bindings)-1].expr, nil
		}
	}

	switch {
	case len(bindings) == 0:
		return strconv.Quote(text), nil
	case len(bindings) == 1 && bindings[0].verb == "%s" && bindings[0].start == 0 && bindings[0].end == len(text):
		return bindings[0].expr, nil
	}

	slices.SortFunc(bindings, func(a, b binding) int { return a.start - b.start })

	var layout strings.Builder
	args := make([]string, 0, len(bindings))
	pos := 0
	for _, b := range bindings {
		layout.WriteString(strings.ReplaceAll(text[pos:b.start], "%", "%%"))
		layout.WriteString(b.verb)
		args = append(args, b.expr)
		pos = b.end
	}
	layout.WriteString(strings.ReplaceAll(text[pos:], "%", "%%"))

	g.usesFmt = true
	return fmt.Sprintf("fmt.Sprintf(%s, %s)", strconv.Quote(layout.String()), strings.Join(args, ", ")), nil
}

func (g *generator) field(name, needle string) (propertyDescriptor, error) {
	field, ok := g.comp.Schema.Fields[strings.ToLower(name)]
	if !ok {
		return propertyDescriptor{}, g.errorf(needle, "field '%s' not found on component '%s', available: [%s]",
			name, g.comp.PascalName, fieldNames(g.comp.Schema.Fields))
	}
	return field, nil
}

// condition resolves a boolean field reference, negated when asked.
func (g *generator) condition(negated bool, name, needle string) (string, error) {
	field, err := g.field(name, needle)
	if err != nil {
		return "", err
	}
	if field.GoType != "bool" {
		return "", g.errorf(needle, "condition '%s' must be a bool field, found type '%s'", name, field.GoType)
	}
	expr := fmt.Sprintf("%s.%s", g.dataReceiver(), field.Name)
	if negated {
		expr = "!" + expr
	}
	return expr, nil
}

// jsEventKey converts "onclick" to the "onClick" attribute key the renderer expects.
func jsEventKey(event string) string {
	return "on" + strings.ToUpper(event[2:3]) + event[3:]
}
