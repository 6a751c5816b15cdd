package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/vcrobe/nojs-greeter/internal/logger"
)

// TimeLayout is the format of the /api/time body.
const TimeLayout = "Mon Jan 2 15:04:05"

// AnonymousGreeting answers a /api/sayhello request without a name.
const AnonymousGreeting = "Hello, anonymous user!"

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (s *Server) handleSayHello(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	if err := s.validate.Var(name, fmt.Sprintf("max=%d", s.cfg.MaxNameLength)); err != nil {
		log := logger.Component(requestLogger(r, s.log), "api")
		log.Warn().Int("length", len(name)).Msg("name rejected")
		writeText(w, http.StatusBadRequest, fmt.Sprintf("name must be at most %d characters", s.cfg.MaxNameLength))
		return
	}

	if name == "" {
		writeText(w, http.StatusOK, AnonymousGreeting)
		return
	}
	writeText(w, http.StatusOK, fmt.Sprintf("Hello, %v!", name))
}

func (s *Server) handleTime(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, s.now().Format(TimeLayout))
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, s.log)

	if assetName(r.URL.Path) == IndexFile {
		page, err := s.indexPage()
		if err != nil {
			log.Error().Err(err).Msg("index render failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if page != nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Cache-Control", "no-cache")
			_, _ = w.Write(page)
			return
		}
	}

	f, err := s.loader.Load(r.URL.Path)
	if err != nil {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("asset lookup failed")
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("asset stat failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	head, err := s.loader.head(assetName(r.URL.Path))
	if err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("asset read failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ContentType(info.Name(), head))

	// Embedded files carry no modification time; files on disk do.
	modTime := info.ModTime()
	if modTime.IsZero() {
		modTime = s.startedAt
	}

	// Seekable files get Range and If-Modified-Since handling from ServeContent.
	if rs, ok := f.(io.ReadSeeker); ok {
		http.ServeContent(w, r, info.Name(), modTime, rs)
		return
	}

	data, err := s.loader.ReadFile(r.URL.Path)
	if err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("asset read failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(data)
}
