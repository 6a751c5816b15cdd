// Package poll implements the polling toggle: a fixed-interval repeating
// callback that the user starts and stops.
package poll

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Poller owns at most one running ticker loop.
type Poller struct {
	interval time.Duration
	log      zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Poller.
type Option func(*Poller)

// WithLogger sets the logger used for start/stop tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Poller) {
		p.log = log
	}
}

// New returns a stopped Poller ticking every interval.
func New(interval time.Duration, opts ...Option) *Poller {
	p := &Poller{
		interval: interval,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start stops any running loop, then invokes fn once per interval until Stop.
// Each tick runs fn on its own goroutine, so a slow call never delays the next
// tick and nothing tracks calls that are still in flight.
func (p *Poller) Start(fn func(ctx context.Context)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go p.loop(ctx, done, fn)
	p.log.Debug().Dur("interval", p.interval).Msg("polling started")
}

// Stop cancels the running loop and waits for it to exit. It is a no-op when
// nothing is running. Once Stop returns no further tick fires.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopLocked() {
		p.log.Debug().Msg("polling stopped")
	}
}

// Running reports whether a loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) stopLocked() bool {
	if p.cancel == nil {
		return false
	}
	p.cancel()
	<-p.done
	p.cancel = nil
	p.done = nil
	return true
}

func (p *Poller) loop(ctx context.Context, done chan<- struct{}, fn func(ctx context.Context)) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A tick and a cancel can be ready together; cancel wins.
			if ctx.Err() != nil {
				return
			}
			go fn(ctx)
		}
	}
}
