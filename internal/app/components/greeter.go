package components

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vcrobe/nojs-greeter/events"
	"github.com/vcrobe/nojs-greeter/internal/api"
	"github.com/vcrobe/nojs-greeter/internal/poll"
	"github.com/vcrobe/nojs-greeter/runtime"
	"github.com/vcrobe/nojs-greeter/signals"
)

//go:generate go run ../../../cmd/nojs-compiler -in .

// GreeterState is a point-in-time copy of the page state.
type GreeterState struct {
	TxtInput string
	Result   string
	HasErr   bool
	Time     string
}

// Greeter is the whole page: a name form that calls the greeting endpoint and a
// clock whose periodic refresh is switched on and off by the user.
//
// Network completions arrive on their own goroutines and the last one to land
// wins; nothing orders or de-duplicates them.
type Greeter struct {
	runtime.ComponentBase

	service api.Service
	poller  *poll.Poller
	log     zerolog.Logger

	mu       sync.Mutex
	txtInput string
	result   string
	hasErr   bool

	time        *signals.Signal[string]
	unsubscribe func()

	// tickMu orders publishing a polled time against switching the timer off.
	tickMu sync.Mutex
}

// NewGreeter builds the page around a backend service and the poller that drives the clock.
func NewGreeter(service api.Service, poller *poll.Poller, log zerolog.Logger) *Greeter {
	return &Greeter{
		service: service,
		poller:  poller,
		log:     log.With().Str("component", "greeter").Logger(),
		time:    signals.NewSignal(""),
	}
}

// OnMount subscribes the page to clock updates and fetches the time once.
func (c *Greeter) OnMount() {
	c.mu.Lock()
	if c.unsubscribe == nil {
		c.unsubscribe = c.time.Subscribe(c.StateHasChanged)
	}
	c.mu.Unlock()

	go c.RefreshTime(context.Background())
}

// OnUnmount stops the clock so no timer outlives the page.
func (c *Greeter) OnUnmount() {
	c.stopTimer()

	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// State returns a copy of the current page state.
func (c *Greeter) State() GreeterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GreeterState{
		TxtInput: c.txtInput,
		Result:   c.result,
		HasErr:   c.hasErr,
		Time:     c.time.Get(),
	}
}

// HandleNameInput keeps the typed name in state.
func (c *Greeter) HandleNameInput(e events.ChangeEventArgs) {
	c.mu.Lock()
	c.txtInput = e.Value
	c.mu.Unlock()

	c.StateHasChanged()
}

// HandleSubmit sends the typed name without blocking the event handler.
func (c *Greeter) HandleSubmit() {
	go c.Submit(context.Background())
}

// Submit asks the backend to greet the typed name and shows the outcome.
// Result and error flag always change together.
func (c *Greeter) Submit(ctx context.Context) {
	c.mu.Lock()
	name := c.txtInput
	c.mu.Unlock()

	greeting, err := c.service.SayHello(ctx, name)

	c.mu.Lock()
	switch {
	case err == nil:
		c.result, c.hasErr = greeting, false
	case errors.Is(err, api.ErrNotOK):
		c.result, c.hasErr = api.ErrNotOK.Error(), true
	default:
		c.result, c.hasErr = err.Error(), true
	}
	c.mu.Unlock()

	if err != nil {
		c.log.Warn().Err(err).Str("name", name).Msg("say hello failed")
	}
	c.StateHasChanged()
}

// RefreshTime fetches the server time and publishes it. Failures are only
// logged and the displayed time stays as it was. A response that arrives after
// ctx is cancelled (the timer was switched off) is dropped.
func (c *Greeter) RefreshTime(ctx context.Context) {
	t, err := c.service.Time(ctx)
	if err != nil {
		switch {
		case ctx.Err() != nil:
			c.log.Debug().Err(err).Msg("time refresh cancelled")
		case errors.Is(err, api.ErrNotOK):
			c.log.Error().Msg(api.ErrNotOK.Error())
		default:
			c.log.Error().Msg(err.Error())
		}
		return
	}

	c.tickMu.Lock()
	defer c.tickMu.Unlock()
	if ctx.Err() != nil {
		return
	}
	c.time.Set(t)
}

// HandleTimerOn starts refreshing the time every poll interval, replacing any running timer.
func (c *Greeter) HandleTimerOn() {
	c.poller.Start(c.RefreshTime)
}

// HandleTimerOff stops the periodic refresh. Once it returns, no polled
// response changes the displayed time.
func (c *Greeter) HandleTimerOff() {
	c.stopTimer()
}

func (c *Greeter) stopTimer() {
	c.tickMu.Lock()
	defer c.tickMu.Unlock()
	c.poller.Stop()
}
