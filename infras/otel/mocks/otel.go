package mocks

import (
	"context"
	"rentdesk/infras/otel"
)

type otelImpl struct{}

// NewOtel returns a tracer whose scopes record nothing, for unit tests.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}
