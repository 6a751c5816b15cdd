//go:build js || wasm

package events

import "syscall/js"

// AdaptNoArgEvent wraps a parameterless handler as a DOM listener.
func AdaptNoArgEvent(handler func()) func(js.Value) {
	return func(js.Value) {
		handler()
	}
}

// AdaptChangeEvent wraps a handler that wants the element's value as a DOM listener.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(js.Value) {
	return func(e js.Value) {
		target := e.Get("target")
		value := ""
		if target.Truthy() {
			value = target.Get("value").String()
		}
		handler(ChangeEventArgs{Value: value})
	}
}
