// Package compiler turns *.gt.html component templates into Render methods.
//
// A template sits next to the Go file of its component: Greeter.gt.html
// describes the Greeter struct in greeter.go and compiles to
// greeter.generated.go. Templates support static markup, {Field} bindings in
// text and attribute values, {Cond ? 'a' : 'b'} ternaries, boolean attribute
// shorthand ({Cond}) and @onclick/@oninput/@onchange handlers. Components that
// expose a State() snapshot bind against the snapshot's fields.
package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// Compiler discovers and compiles component templates.
type Compiler struct {
	frameworkPath string
	log           zerolog.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithFrameworkPath sets the import path prefix of the runtime, vdom and events packages.
func WithFrameworkPath(path string) Option {
	return func(c *Compiler) {
		c.frameworkPath = path
	}
}

// WithLogger sets the logger used for progress output.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Compiler) {
		c.log = log
	}
}

// New returns a Compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		frameworkPath: DefaultFrameworkPath,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles every template found in the packages under srcDir and writes
// a *.generated.go file next to each one. It returns the written paths.
func (c *Compiler) Compile(srcDir string) ([]string, error) {
	absSrcDir, err := filepath.Abs(srcDir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", srcDir, err)
	}

	components, err := c.discoverComponents(absSrcDir)
	if err != nil {
		return nil, err
	}
	c.log.Info().Int("components", len(components)).Str("dir", absSrcDir).Msg("templates discovered")

	written := make([]string, 0, len(components))
	for _, comp := range components {
		src, err := os.ReadFile(comp.Path)
		if err != nil {
			return written, fmt.Errorf("read template: %w", err)
		}
		out, err := c.compileTemplate(comp, src)
		if err != nil {
			return written, err
		}

		outPath := filepath.Join(filepath.Dir(comp.Path), comp.LowercaseName+".generated.go")
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", outPath, err)
		}
		c.log.Info().Str("component", comp.PascalName).Str("out", outPath).Msg("compiled")
		written = append(written, outPath)
	}
	return written, nil
}

// compileTemplate generates the Go source for one component template.
func (c *Compiler) compileTemplate(comp componentInfo, src []byte) ([]byte, error) {
	doc, err := html.Parse(strings.NewReader(string(src)))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", comp.Path, err)
	}

	body := findBody(doc)
	if body == nil {
		return nil, &TemplateError{Path: comp.Path, Msg: "template has no markup"}
	}
	roots := elementChildren(body)
	if len(roots) != 1 {
		return nil, &TemplateError{Path: comp.Path, Msg: fmt.Sprintf("template must have exactly one root element, found %d", len(roots))}
	}

	g := &generator{
		comp:          comp,
		src:           string(src),
		frameworkPath: c.frameworkPath,
	}
	return g.file(roots[0])
}

func templateName(path string) string {
	return filepath.Base(path)
}
