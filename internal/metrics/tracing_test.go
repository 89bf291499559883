package metrics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/agbru/dhcalc/internal/bigint"
)

type startedSpan struct {
	name  string
	start time.Time
	attrs []attribute.KeyValue
}

type recordingProvider struct {
	embedded.TracerProvider
	mu    sync.Mutex
	spans []startedSpan
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return &recordingTracer{p: p}
}

type recordingTracer struct {
	embedded.Tracer
	p *recordingProvider
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	t.p.mu.Lock()
	t.p.spans = append(t.p.spans, startedSpan{name: name, start: cfg.Timestamp(), attrs: cfg.Attributes()})
	t.p.mu.Unlock()
	return noop.NewTracerProvider().Tracer("").Start(ctx, name)
}

func TestTracer_OneSpanPerOperation(t *testing.T) {
	t.Parallel()
	provider := &recordingProvider{}
	tracer := NewTracer(provider)

	before := time.Now()
	tracer.Observe(bigint.EngineBig, bigint.OpPowMod, 50*time.Millisecond, nil)
	tracer.Observe(bigint.EngineBig, bigint.OpSqrt, 0, errors.New("boom"))

	if len(provider.spans) != 2 {
		t.Fatalf("recorded %d spans, want 2", len(provider.spans))
	}
	first := provider.spans[0]
	if first.name != "bigint.powmod" {
		t.Errorf("span name = %q", first.name)
	}
	if !first.start.Before(before) {
		t.Errorf("span start %v should be back-dated before %v", first.start, before)
	}
	want := map[attribute.Key]string{"bigint.engine": "big", "bigint.op": "powmod"}
	for _, kv := range first.attrs {
		if v, ok := want[kv.Key]; ok && kv.Value.AsString() != v {
			t.Errorf("attribute %s = %q, want %q", kv.Key, kv.Value.AsString(), v)
		}
		delete(want, kv.Key)
	}
	if len(want) != 0 {
		t.Errorf("missing attributes %v", want)
	}
}

func TestTracer_DefaultsToGlobalProvider(t *testing.T) {
	t.Parallel()
	tracer := NewTracer(nil)
	tracer.Observe(bigint.EngineBig, bigint.OpAdd, time.Microsecond, nil)
}
