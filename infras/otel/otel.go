package otel

import (
	"context"

	"hoteldesk/config"
	"hoteldesk/shared/constant"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc/credentials/insecure"
)

type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type sessionIDKey struct{}

// WithSessionID marks the context so every scope opened under it carries the
// session id as a span attribute.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

func sessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey{}).(string)

	return id, ok
}

type otelImpl struct {
	TracerProvider *trace.TracerProvider
}

func (o *otelImpl) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := o.TracerProvider.Tracer(scopeName).Start(ctx, spanName)

	if id, ok := sessionID(ctx); ok {
		span.SetAttributes(attribute.String(constant.OtelSessionAttributeKey, id))
	}

	return ctx, NewScope(span)
}

// New builds the tracer provider. Without a configured endpoint the provider
// carries no exporter, so spans are recorded and dropped; the desk must keep
// working without a collector nearby.
func New(config *config.Config) Otel {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(config.App.Name),
	)

	opts := []trace.TracerProviderOption{trace.WithResource(res)}

	if endpoint := config.External.Otel.Endpoint; endpoint != "" {
		exporter, err := otlptracegrpc.New(context.Background(),
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create OTLP exporter")
		}

		opts = append(opts, trace.WithBatcher(exporter))
	}

	traceProvider := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(traceProvider)

	return &otelImpl{TracerProvider: traceProvider}
}

// NewNoop returns an exporter-less provider for tests.
func NewNoop() Otel {
	return &otelImpl{TracerProvider: trace.NewTracerProvider()}
}
