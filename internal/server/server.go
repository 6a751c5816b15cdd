// Package server is the backend of the greeter: the two plain-text API
// endpoints and the embedded web client.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"

	"github.com/vcrobe/nojs-greeter/internal/api"
	"github.com/vcrobe/nojs-greeter/internal/app/components"
	"github.com/vcrobe/nojs-greeter/internal/config"
	"github.com/vcrobe/nojs-greeter/internal/poll"
	"github.com/vcrobe/nojs-greeter/vdom"
)

// MountID is the id of the element the client mounts on.
const MountID = "app"

// Server wires the API handlers and the asset loader behind one http.Handler.
type Server struct {
	cfg       config.Config
	log       zerolog.Logger
	loader    *Loader
	validate  *validator.Validate
	index     []byte
	now       func() time.Time
	startedAt time.Time
	liveIndex bool
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces time.Now for /api/time.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithLiveIndex prerenders index.html on every request instead of once in New.
// Use it with assets read from disk so page edits need no restart.
func WithLiveIndex() Option {
	return func(s *Server) {
		s.liveIndex = true
	}
}

// New builds a Server serving assets from fsys. When fsys holds an index.html
// it is prerendered with the client's initial markup once, here.
func New(cfg config.Config, log zerolog.Logger, fsys fs.FS, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:       cfg,
		log:       log,
		loader:    NewLoader(fsys),
		validate:  validator.New(),
		now:       time.Now,
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	index, err := s.renderIndex()
	if err != nil {
		return nil, err
	}
	if index == nil {
		log.Warn().Msg("no index.html in assets, / will answer 404")
	}
	s.index = index
	return s, nil
}

// renderIndex reads index.html and prerenders the client into it. It returns
// nil when the assets have no index.
func (s *Server) renderIndex() ([]byte, error) {
	page, err := s.loader.ReadFile("/" + IndexFile)
	switch {
	case errors.Is(err, ErrAssetNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read index: %w", err)
	}

	index, err := Prerender(page, MountID, initialMarkup(s.log))
	if err != nil {
		return nil, fmt.Errorf("prerender index: %w", err)
	}
	return index, nil
}

func (s *Server) indexPage() ([]byte, error) {
	if !s.liveIndex {
		return s.index, nil
	}
	return s.renderIndex()
}

// initialMarkup renders the Greeter as it looks before any request completes.
func initialMarkup(log zerolog.Logger) *vdom.VNode {
	g := components.NewGreeter(nil, poll.New(time.Second), log)
	return g.Render(nil)
}

// Handler returns the full handler chain: request IDs, access log, gzip, routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+api.SayHelloPath, s.handleSayHello)
	mux.HandleFunc("GET "+api.TimePath, s.handleTime)
	mux.HandleFunc("GET /", s.handleAsset)

	return withRequestID(s.log, withAccessLog(gzhttp.GzipHandler(mux)))
}

// Run serves on the configured address until ctx is cancelled, then shuts down
// within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("webapp started")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Assets lists the served files.
func (s *Server) Assets() ([]Asset, error) {
	return s.loader.List()
}
