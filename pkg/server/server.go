package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/chartstyle/pkg/buildinfo"
	"github.com/matzehuels/chartstyle/pkg/cache"
	"github.com/matzehuels/chartstyle/pkg/palette"
)

const (
	// DefaultCacheTTL is how long resolve responses are cached.
	DefaultCacheTTL = time.Hour

	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// Option configures a Server.
type Option func(*Server)

// WithRegistry sets the base palette registry. Configurations register
// their own palettes on a clone of it.
func WithRegistry(r *palette.Registry) Option { return func(s *Server) { s.registry = r } }

// WithCache enables response caching.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Server) { s.cache, s.ttl = c, ttl }
}

// WithKeyer overrides how cache keys are derived.
func WithKeyer(k cache.Keyer) Option { return func(s *Server) { s.keyer = k } }

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// Server serves the HTTP API.
type Server struct {
	registry *palette.Registry
	cache    cache.Cache
	keyer    cache.Keyer
	ttl      time.Duration
	logger   *log.Logger
	router   chi.Router
}

// New builds a server. Without options it uses the builtin palettes, no
// cache and the default charm logger.
func New(opts ...Option) *Server {
	s := &Server{ttl: DefaultCacheTTL}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = palette.Default()
	}
	s.cache = cache.Observe(s.cache)
	if s.keyer == nil {
		s.keyer = cache.NewScopedKeyer(nil, buildinfo.CacheScope())
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/palettes", func(r chi.Router) {
		r.Get("/", s.handlePalettes)
		r.Get("/{name}", s.handlePalette)
	})
	r.Post("/resolve", s.handleResolve)
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases the cache.
func (s *Server) Close() error {
	return s.cache.Close()
}
