// Package server exposes a planner over a JSON HTTP API.
//
// Routes:
//
//	GET  /healthz                      liveness and network summary
//	GET  /stations                     every station with its lines
//	GET  /stations/{name}/reachable    shortest distances from a station
//	GET  /lines                        line table
//	GET  /route?from=A&to=B            journey between two stations
//	GET  /map.svg[?from=A&to=B]        network map, route highlighted
//	POST /reload                       rebuild the network from its source
//
// The active planner sits behind an atomic pointer. Reload builds a new one
// and swaps it in, so queries never take a lock and never see a half-built
// network.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/matzehuels/metroroute/internal/config"
	"github.com/matzehuels/metroroute/pkg/planner"
	"github.com/matzehuels/metroroute/pkg/render"
)

// LoadFunc builds a planner from the server's data source.
type LoadFunc func(ctx context.Context) (*planner.Planner, error)

// Options configures a Server.
type Options struct {
	Logger   *log.Logger
	Renderer *render.Renderer // nil renders without a cache
	Load     LoadFunc         // nil disables POST /reload

	// CORSOrigins are the browser origins allowed to call the API.
	CORSOrigins []string
}

// Server serves one planner at a time.
type Server struct {
	current  atomic.Pointer[planner.Planner]
	load     LoadFunc
	renderer *render.Renderer
	logger   *log.Logger
	loadedAt atomic.Int64
	origins  []string
}

// New creates a server answering from p.
func New(p *planner.Planner, opts Options) *Server {
	s := &Server{
		load:     opts.Load,
		renderer: opts.Renderer,
		logger:   opts.Logger,
		origins:  opts.CORSOrigins,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.renderer == nil {
		s.renderer = render.NewRenderer(nil, 0)
	}
	s.swap(p)
	return s
}

// Planner returns the planner currently serving queries.
func (s *Server) Planner() *planner.Planner { return s.current.Load() }

func (s *Server) swap(p *planner.Planner) {
	s.current.Store(p)
	s.loadedAt.Store(time.Now().Unix())
}

// ErrReloadDisabled is returned by [Server.Reload] when no LoadFunc is set.
var ErrReloadDisabled = errors.New("reload not configured")

// Reload rebuilds the planner and swaps it in. On failure the old planner
// keeps serving.
func (s *Server) Reload(ctx context.Context) error {
	if s.load == nil {
		return ErrReloadDisabled
	}
	p, err := s.load(ctx)
	if err != nil {
		return err
	}
	s.swap(p)
	s.logger.Info("network reloaded", "name", p.Name(), "stations", p.Graph().StationCount())
	return nil
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	if len(s.origins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: s.origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type", HeaderRequestID},
			ExposedHeaders: []string{HeaderRequestID},
			MaxAge:         300,
		}).Handler)
	}
	r.Use(middleware.Compress(5, "application/json", "image/svg+xml"))

	r.Get("/healthz", s.handleHealth)
	r.Get("/stations", s.handleStations)
	r.Get("/stations/{name}/reachable", s.handleReachable)
	r.Get("/lines", s.handleLines)
	r.Get("/route", s.handleRoute)
	r.Get("/map.svg", s.handleMap)
	r.Post("/reload", s.handleReload)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no such endpoint")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
// within cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", cfg.Addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
