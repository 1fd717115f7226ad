package middleware

import (
	"bookit/config"
	"bookit/infras/otel"
	"bookit/shared/cache"
	"bookit/shared/constant"
	"bookit/shared/failure"
	"bookit/shared/logger"
	"bookit/transport/http/response"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing() func(http.Handler) http.Handler
	RequestLogger() func(http.Handler) http.Handler
	Recoverer() func(http.Handler) http.Handler
	CORS() func(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// Tracing extracts the caller's trace context and records one span per request,
// named after the matched route.
func (a *appMiddleware) Tracing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer scope.End()

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(ctx))

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			scope.SetAttributes(map[string]any{
				"app.name":         a.config.App.Name,
				"http.path":        r.URL.Path,
				"http.route":       route,
				"http.method":      r.Method,
				"http.user_agent":  r.Header.Get(constant.RequestHeaderUserAgent),
				"http.host":        r.Host,
				"http.source":      clientIP(r),
				"http.status_code": ww.Status(),
			})
		})

		return otelhttp.NewHandler(inner, otelHTTPScopeName,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}
}

// RequestLogger writes one line per request after it completes.
func (a *appMiddleware) RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			event := logger.Ctx(r.Context()).Info()

			switch {
			case status >= http.StatusInternalServerError:
				event = logger.Ctx(r.Context()).Error()
			case status >= http.StatusBadRequest:
				event = logger.Ctx(r.Context()).Warn()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("ip", clientIP(r)).
				Msg("http request")
		})
	}
}

// Recoverer turns a panic into a 500 response.
func (a *appMiddleware) Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if rec == http.ErrAbortHandler { //nolint:errorlint
					panic(rec)
				}

				err := fmt.Errorf("panic: %v", rec)
				logger.ErrorWithStack(err)

				response.WithError(w, failure.InternalError(err))
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// CORS is a pass-through unless APP_CORS_ENABLE is set.
func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	corsConfig := a.config.App.CORS
	if !corsConfig.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	})
}
