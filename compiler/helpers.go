package compiler

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// TemplateError points at the template line that failed to compile.
type TemplateError struct {
	Path    string
	Line    int
	Msg     string
	Context string
}

func (e *TemplateError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s\n%s", e.Path, e.Line, e.Msg, e.Context)
}

func (g *generator) errorf(needle, format string, args ...any) error {
	line := estimateLineNumber(g.src, needle)
	return &TemplateError{
		Path:    g.comp.Path,
		Line:    line,
		Msg:     fmt.Sprintf(format, args...),
		Context: getContextLines(g.src, line, 2),
	}
}

// estimateLineNumber returns the first line containing text, or 0 when absent.
func estimateLineNumber(source, text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	for i, line := range strings.Split(source, "\n") {
		if strings.Contains(line, text) {
			return i + 1
		}
	}
	return 0
}

// getContextLines returns the lines around lineNumber with the line itself marked.
func getContextLines(source string, lineNumber, contextSize int) string {
	if lineNumber == 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	start := max(lineNumber-contextSize-1, 0)
	end := min(lineNumber+contextSize, len(lines))

	var sb strings.Builder
	for i := start; i < end; i++ {
		prefix := "  "
		if i+1 == lineNumber {
			prefix = "> "
		}
		fmt.Fprintf(&sb, "%s%4d | %s\n", prefix, i+1, lines[i])
	}
	return sb.String()
}

func availableNames[V any](m map[string]V, name func(V) string) string {
	names := make([]string, 0, len(m))
	for _, v := range m {
		names = append(names, name(v))
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func fieldNames(fields map[string]propertyDescriptor) string {
	return availableNames(fields, func(p propertyDescriptor) string { return p.Name })
}

func methodNames(methods map[string]methodDescriptor) string {
	return strings.Join(slices.Sorted(maps.Keys(methods)), ", ")
}

// findBody finds the <body> node in the parsed HTML.
func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findBody(c); result != nil {
			return result
		}
	}
	return nil
}

// elementChildren returns the element children of n.
func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}
