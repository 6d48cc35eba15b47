// Package server serves the rendered site over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/phonefixpro/site/internal/config"
	"github.com/phonefixpro/site/internal/render"
	"github.com/phonefixpro/site/internal/site"
)

// Server routes requests to the site's pages.
type Server struct {
	site   *site.Site
	logger *slog.Logger
	now    func() time.Time
	router *mux.Router
}

// Option customizes a Server.
type Option func(*Server)

// WithClock replaces time.Now as the source of the year shown in the footer.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New returns a Server rendering pages of st and logging to logger.
func New(st *site.Site, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		site:   st,
		logger: logger,
		now:    time.Now,
		router: mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(nameSpan)
	s.router.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)
}

// Handler returns the router wrapped in the request middleware, so that
// unmatched routes are logged and traced like every other request.
func (s *Server) Handler() http.Handler {
	return chain(s.router,
		requestID,
		requestLogger(s.logger),
		trace,
		accessLog,
	)
}

// HTTPServer returns an http.Server serving Handler with the timeouts in
// cfg.
func (s *Server) HTTPServer(cfg config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	render.Render(r.Context(), w, s.site, s.site.HomePage(s.now().Year()))
}

func (*Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (*Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Not found.", http.StatusNotFound)
}

func (*Server) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
}
