package otel

import (
	"context"
	"testing"

	"hoteldesk/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordingOtel() (Otel, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	return &otelImpl{TracerProvider: provider}, recorder
}

func TestNewScope_StampsSessionID(t *testing.T) {
	o, recorder := recordingOtel()
	ctx := WithSessionID(context.Background(), "3f1c9a2e")

	_, scope := o.NewScope(ctx, constant.OtelHandlerScopeName, "handler.booking.List")
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes(),
		attribute.String(constant.OtelSessionAttributeKey, "3f1c9a2e"))
}

func TestNewScope_NoSessionIDWithoutMark(t *testing.T) {
	o, recorder := recordingOtel()

	_, scope := o.NewScope(context.Background(), constant.OtelServiceScopeName, "service.booking.List")
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	for _, attr := range spans[0].Attributes() {
		assert.NotEqual(t, attribute.Key(constant.OtelSessionAttributeKey), attr.Key)
	}
}

func TestNewScope_SessionIDSurvivesNestedScopes(t *testing.T) {
	o, recorder := recordingOtel()
	ctx := WithSessionID(context.Background(), "ab12cd34")

	ctx, outer := o.NewScope(ctx, constant.OtelHandlerScopeName, "handler.guest.Add")
	_, inner := o.NewScope(ctx, constant.OtelRepositoryScopeName, "repository.guest.Insert")
	inner.End()
	outer.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	for _, span := range spans {
		assert.Contains(t, span.Attributes(),
			attribute.String(constant.OtelSessionAttributeKey, "ab12cd34"))
	}
}
