package events

import "slices"

// EventSignature describes how a template event attribute (@onclick, @oninput, ...)
// binds to a component method.
type EventSignature struct {
	// ArgsType is the qualified type of the handler's single parameter, or "" for func().
	ArgsType string
	// Adapter is the function generated code wraps the handler with.
	Adapter       string
	SupportedTags []string
}

// RequiresArgs reports whether handlers take an event argument.
func (s EventSignature) RequiresArgs() bool {
	return s.ArgsType != ""
}

var signatures = map[string]EventSignature{
	"onclick": {
		Adapter:       "events.AdaptNoArgEvent",
		SupportedTags: []string{"button", "input", "div", "span", "a", "img", "p", "li", "h1"},
	},
	"oninput": {
		ArgsType:      "events.ChangeEventArgs",
		Adapter:       "events.AdaptChangeEvent",
		SupportedTags: []string{"input", "textarea"},
	},
	"onchange": {
		ArgsType:      "events.ChangeEventArgs",
		Adapter:       "events.AdaptChangeEvent",
		SupportedTags: []string{"input", "textarea", "select"},
	},
}

// GetEventSignature returns the signature of a template event name such as "onclick".
func GetEventSignature(name string) (EventSignature, bool) {
	sig, ok := signatures[name]
	return sig, ok
}

// IsEventSupported reports whether the event may be bound on tag.
func IsEventSupported(name, tag string) bool {
	sig, ok := signatures[name]
	return ok && slices.Contains(sig.SupportedTags, tag)
}

// SupportedEvents lists the template event names, sorted.
func SupportedEvents() []string {
	names := make([]string, 0, len(signatures))
	for name := range signatures {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
