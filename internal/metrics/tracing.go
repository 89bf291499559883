package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/dhcalc/internal/bigint"
)

const instrumentationName = "github.com/agbru/dhcalc/internal/bigint"

// Tracer emits one OpenTelemetry span per forwarded operation. It implements
// bigint.Observer. Spans are back-dated with the measured duration since the
// observer runs after the operation completes.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer from tp, or from the global provider when tp is
// nil. Without a configured SDK the global provider discards spans.
func NewTracer(tp trace.TracerProvider) *Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Tracer{tracer: tp.Tracer(instrumentationName)}
}

// Observe implements bigint.Observer.
func (t *Tracer) Observe(engine bigint.EngineName, op bigint.Op, elapsed time.Duration, err error) {
	end := time.Now()
	_, span := t.tracer.Start(context.Background(), "bigint."+string(op),
		trace.WithTimestamp(end.Add(-elapsed)),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("bigint.engine", string(engine)),
			attribute.String("bigint.op", string(op)),
		),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End(trace.WithTimestamp(end))
}
