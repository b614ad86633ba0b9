package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Clark-Hu/movie-catalog/internal/catalog"
	"github.com/Clark-Hu/movie-catalog/internal/config"
	"github.com/Clark-Hu/movie-catalog/internal/metrics"
)

// Server wires HTTP routing, middleware, and handlers around one catalog.
type Server struct {
	cfg     config.Config
	logger  *log.Logger
	router  chi.Router
	httpSrv *http.Server

	// mu guards catalog; Catalog itself is not safe for concurrent use.
	mu      sync.RWMutex
	catalog *catalog.Catalog
}

// New constructs the HTTP server with base middleware and routes.
func New(cfg config.Config, cat *catalog.Catalog, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if cat == nil {
		cat = catalog.New()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Instrument)
	if cfg.RateLimitPerMin > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMin, time.Minute))
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		router:  r,
		catalog: cat,
	}
	s.registerRoutes()
	metrics.ObserveCatalog(cat.Len(), len(cat.Collections()))
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	s.router.Route("/movies", func(r chi.Router) {
		r.Get("/", s.handleListMovies)
		r.Post("/", s.handleAddMovie)
		r.Get("/{title}", s.handleGetMovie)
		r.Delete("/{title}", s.handleRemoveMovie)
	})
	s.router.Route("/collections", func(r chi.Router) {
		r.Get("/", s.handleListCollections)
		r.Post("/", s.handleCreateCollection)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.handleGetCollection)
			r.Post("/movies", s.handleAddToCollection)
			r.Delete("/movies/{title}", s.handleRemoveFromCollection)
		})
	})
}

// Handler exposes the router, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until ctx is canceled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeoutSecs) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// mutate runs fn under the write lock and records the outcome. The size
// gauges are set before unlocking so they follow the order of mutations.
func (s *Server) mutate(operation string, fn func(*catalog.Catalog) error) error {
	s.mu.Lock()
	err := fn(s.catalog)
	metrics.ObserveCatalog(s.catalog.Len(), len(s.catalog.Collections()))
	s.mu.Unlock()

	metrics.RecordOperation(operation, err)
	return err
}

// read runs fn under the read lock.
func (s *Server) read(fn func(*catalog.Catalog)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.catalog)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	var movies int
	s.read(func(c *catalog.Catalog) { movies = c.Len() })
	s.respondJSON(w, http.StatusOK, healthResponse{Status: "ok", Movies: movies})
}
