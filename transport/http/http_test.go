package http_test

import (
	"bookit/config"
	otelMocks "bookit/infras/otel/mocks"
	cacheMocks "bookit/shared/cache/mocks"
	transport "bookit/transport/http"
	"bookit/transport/http/middleware"
	"bookit/transport/http/router"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pinger struct {
	err error
}

func (p pinger) Ping(_ context.Context) error {
	return p.err
}

func newServer(t *testing.T, health transport.HealthChecker) *transport.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Name = "bookit"

	m := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))

	return transport.New(cfg, router.New(router.DomainHandlers{}), m, health)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		health   transport.HealthChecker
		wantCode int
	}{
		{name: "healthy", health: pinger{}, wantCode: http.StatusOK},
		{name: "database unreachable", health: pinger{err: errors.New("dial tcp: refused")}, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, tt.health)

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, transport.ServerStateReady, server.State())

			if tt.wantCode == http.StatusOK {
				body := map[string]any{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "ok", body["status"])
				assert.NotEmpty(t, body["timestamp"])
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	server := newServer(t, pinger{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Route not found"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}
