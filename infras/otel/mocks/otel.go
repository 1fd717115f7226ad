package mocks

import (
	"bookit/infras/otel"
	"context"
)

type otelImpl struct{}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

// NewOtel returns a no-op otel.Otel for tests.
func NewOtel() otel.Otel {
	return &otelImpl{}
}
