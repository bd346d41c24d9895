package preview

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of the preview tracer.
const TracerName = "github.com/vango-dev/vangoui/internal/preview"

// defaultTracer resolves the tracer from the global provider, so spans are
// no-ops until the binary installs one with otel.SetTracerProvider.
func defaultTracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// startEventSpan opens a span named after the event type.
func startEventSpan(ctx context.Context, tracer trace.Tracer, sessionID string, ev ClientEvent) (context.Context, trace.Span) {
	return tracer.Start(ctx, "vangoui."+ev.Event,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("vangoui.session_id", sessionID),
			attribute.String("vangoui.event_type", ev.Event),
			attribute.String("vangoui.event_target", ev.HID),
		),
	)
}

// endEventSpan records err on span and ends it.
func endEventSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
