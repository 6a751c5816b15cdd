//go:build js || wasm

// Command webapp is the browser side of the greeter: it mounts the Greeter page
// on #app and talks to the backend that served it.
package main

import (
	"syscall/js"
	"time"

	"github.com/vcrobe/nojs-greeter/console"
	"github.com/vcrobe/nojs-greeter/internal/api"
	"github.com/vcrobe/nojs-greeter/internal/app/components"
	"github.com/vcrobe/nojs-greeter/internal/logger"
	"github.com/vcrobe/nojs-greeter/internal/poll"
	"github.com/vcrobe/nojs-greeter/runtime"
)

const (
	mountSelector = "#app"
	pollInterval  = time.Second
)

// logLevel can be overridden at link time: -ldflags "-X main.logLevel=debug".
var logLevel = "info"

func main() {
	log := logger.New(console.Writer{}, logLevel)

	// Relative URLs are not an option for net/http, so resolve against the page origin.
	origin := js.Global().Get("location").Get("origin").String()
	client, err := api.New(origin, api.WithLogger(logger.Component(log, "api")))
	if err != nil {
		console.Error("Failed to create API client:", err.Error())
		panic(err)
	}

	greeter := components.NewGreeter(
		client,
		poll.New(pollInterval, poll.WithLogger(logger.Component(log, "poller"))),
		log,
	)

	renderer := runtime.NewRenderer(mountSelector)
	renderer.SetCurrentComponent(greeter, "greeter")
	renderer.ReRender()

	// Stop the clock when the page goes away.
	onUnload := js.FuncOf(func(this js.Value, args []js.Value) any {
		renderer.Unmount()
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", onUnload)

	log.Info().Str("origin", origin).Msg("greeter mounted")

	// Keep the Go program running
	select {}
}
