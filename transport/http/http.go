package http

import (
	"bookit/config"
	_ "bookit/docs" // swagger spec
	"bookit/shared/constant"
	"bookit/shared/timezone"
	"bookit/transport/http/middleware"
	"bookit/transport/http/response"
	"bookit/transport/http/router"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	pingTimeout       = 2 * time.Second
	defaultHost       = "0.0.0.0"
)

// HealthChecker reports whether a dependency the API cannot work without is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Health     HealthChecker

	state   atomic.Int32
	once    sync.Once
	handler http.Handler
}

func New(cfg *config.Config, r router.Router, m middleware.AppMiddleware, health HealthChecker) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: m,
		Health:     health,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Handler returns the fully routed handler without starting a listener.
func (h *HTTP) Handler() http.Handler {
	h.once.Do(h.setup)

	return h.handler
}

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Handler().ServeHTTP(w, r)
}

// Serve listens until ctx is cancelled, then drains: during the grace period the
// health check fails while requests are still served, during the cleanup period
// in-flight requests are given time to finish.
func (h *HTTP) Serve(ctx context.Context) error {
	host := h.Config.Server.Host
	if host == "" {
		host = defaultHost
	}

	server := &http.Server{
		Addr:              net.JoinHostPort(host, h.Config.Server.Port),
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Starting up HTTP server.")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	return h.shutdown(server)
}

func (h *HTTP) shutdown(server *http.Server) error {
	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		shutdownConfig.GracePeriodSeconds = 0
	}

	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")
	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")
	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	log.Info().Msg("Cleaning up completed. HTTP server stopped.")

	return nil
}

func (h *HTTP) setup() {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.RequestID)
	mux.Use(h.Middleware.Recoverer())
	mux.Use(h.Middleware.RequestLogger())
	mux.Use(h.Middleware.Tracing())
	mux.Use(h.Middleware.CORS())

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithNotFound(w)
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMethodNotAllowed(w)
	})

	mux.Get("/health", h.health)
	mux.Get("/swagger/*", httpSwagger.WrapHandler)

	mux.Route("/api", func(api chi.Router) {
		api.Use(h.Middleware.RateLimit())
		h.Router.SetupRoutes(api)
	})

	h.handler = mux
	h.state.Store(int32(ServerStateReady))
}

// health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	if h.Health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.Health.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("health check failed")
			response.WithUnhealthy(w)

			return
		}
	}

	response.WithBody(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: timezone.Now()})
}
