// Package server is the dashboard's HTTP surface: rendered views, the JSON
// state API, SSE and websocket live feeds, health and metrics.
package server

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/hub"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/repository"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/shell"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/telemetry"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/views"
	"github.com/shubham-shewale/uptip/pkg/models"
)

// StateStore is the part of the shell the HTTP surface reads and drives.
type StateStore interface {
	Snapshot() shell.State
	SetView(id string) models.ViewID
}

type Options struct {
	Addr    string
	Hub     *hub.Hub
	Limiter repository.RateLimiter
	Live    *LiveStream
	Metrics *telemetry.Registry
	Rand    views.Rand
	Now     func() time.Time
}

type Server struct {
	router   *mux.Router
	server   *http.Server
	state    StateStore
	renderer *views.Renderer
	opts     Options
	logger   *zap.Logger

	// closed by Shutdown; long-lived streams watch it since Shutdown
	// does not cancel request contexts
	closing   chan struct{}
	closeOnce sync.Once
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

func New(state StateStore, renderer *views.Renderer, opts Options, logger *zap.Logger) *Server {
	if opts.Rand == nil {
		opts.Rand = views.NewRand(0)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Live == nil {
		opts.Live = NewLiveStream()
	}

	s := &Server{
		router:   mux.NewRouter(),
		state:    state,
		renderer: renderer,
		opts:     opts,
		logger:   logger,
		closing:  make(chan struct{}),
	}
	s.setupRoutes()

	// no write timeout: /live and /ws hold the connection open
	s.server = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)
	s.router.Use(s.recoveryMiddleware)

	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/view/{id}", s.handleView).Methods(http.MethodGet)
	s.router.HandleFunc("/export/{what}", s.handleExport).Methods(http.MethodGet, http.MethodPost)
	s.router.HandleFunc("/live", s.handleLive).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	if s.opts.Metrics != nil {
		s.router.Handle("/metrics", s.opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(jsonContentTypeMiddleware)
	api.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	api.HandleFunc("/view", s.handleSetView).Methods(http.MethodPost)
	api.HandleFunc("/views", s.handleViews).Methods(http.MethodGet)
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Addr() string { return s.server.Addr }

// Start blocks serving until Shutdown. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	l, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("Server Started", zap.String("addr", l.Addr().String()))
	if err := s.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown ends open /live streams, then drains the remaining requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	s.closeOnce.Do(func() { close(s.closing) })
	return s.server.Shutdown(ctx)
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()[:8]
		}
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		s.logger.Debug("REQ",
			zap.Any("request_id", r.Context().Value(requestIDKey)),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrapper.statusCode),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.logger.Error("Handler panic",
					zap.Any("panic", rec),
					zap.Any("request_id", r.Context().Value(requestIDKey)),
					zap.ByteString("stack", debug.Stack()),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func jsonContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// responseWrapper captures HTTP status codes for logging. It passes Flush
// and Hijack through so SSE and websocket upgrades still work behind it.
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWrapper) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("server: hijack not supported")
	}
	return h.Hijack()
}
