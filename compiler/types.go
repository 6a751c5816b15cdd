package compiler

import "regexp"

// DefaultFrameworkPath is the import path prefix of the runtime, vdom and events packages.
const DefaultFrameworkPath = "github.com/vcrobe/nojs-greeter"

// templateSuffix marks a component template. Greeter.gt.html pairs with greeter.go.
const templateSuffix = ".gt.html"

// componentSchema holds what a template may reference on its component.
type componentSchema struct {
	Fields  map[string]propertyDescriptor // bindable fields keyed by lowercase name
	Methods map[string]methodDescriptor   // exported methods, usable as event handlers

	// StateType is set when the component exposes `State() T` with T a struct in
	// the same file. Bindings then resolve against T's fields on one snapshot.
	StateType string
}

type propertyDescriptor struct {
	Name          string
	LowercaseName string
	GoType        string
}

// methodDescriptor holds the signature information for a component method.
type methodDescriptor struct {
	Name    string
	Params  []paramDescriptor
	Returns []string
}

type paramDescriptor struct {
	Name string
	Type string // e.g. "events.ChangeEventArgs", "string"
}

// componentInfo holds all discovered information about a component.
type componentInfo struct {
	Path          string // template path
	GoPath        string // Go file holding the struct
	PascalName    string
	LowercaseName string
	PackageName   string
	ImportPath    string
	Schema        componentSchema
}

// Data binding expressions like {FieldName}.
var dataBindingRegex = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Ternary expressions like {Cond ? 'a' : 'b'} or {!Cond ? 'a' : 'b'}.
var ternaryExprRegex = regexp.MustCompile(`\{\s*(!?)([a-zA-Z0-9_]+)\s*\?\s*'([^']*)'\s*:\s*'([^']*)'\s*\}`)

// Boolean shorthand like {Cond} or {!Cond} on boolean attributes.
var booleanShorthandRegex = regexp.MustCompile(`^\{\s*(!?)([a-zA-Z0-9_]+)\s*\}$`)

// Directives of the full template language that this compiler does not implement.
var unsupportedDirectiveRegex = regexp.MustCompile(`\{@(if|else|endif|for|endfor)\b`)

var standardBooleanAttrs = map[string]bool{
	"disabled":  true,
	"checked":   true,
	"readonly":  true,
	"required":  true,
	"autofocus": true,
	"selected":  true,
	"hidden":    true,
	"multiple":  true,
}

// voidElements never have children.
var voidElements = map[string]bool{
	"img": true, "input": true, "br": true, "hr": true, "wbr": true,
}

// supportedTags mirrors what the browser renderer can create.
var supportedTags = map[string]bool{
	"div": true, "p": true, "span": true, "label": true, "button": true,
	"input": true, "img": true, "textarea": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "footer": true, "main": true, "section": true, "nav": true,
}
