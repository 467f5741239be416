package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"tabview/internal/config"
	"tabview/internal/tabs"
)

func newTestRecorder(t *testing.T) (*Recorder, *tracetest.InMemoryExporter) {
	t.Helper()
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	r := NewRecorderWithProvider(context.Background(), tp)
	t.Cleanup(func() { _ = r.Shutdown(context.Background()) })
	return r, exp
}

func attrs(s tracetest.SpanStub) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(s.Attributes))
	for _, kv := range s.Attributes {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestRecorder_SpanPerTransition(t *testing.T) {
	r, exp := newTestRecorder(t)
	s := tabs.NewState(tabs.Default())
	s.Observe(r.Observe)

	require.NoError(t, s.SelectMain("tab2"))
	require.NoError(t, s.SelectSub("tab2.2"))

	spans := exp.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "tabs.select_main", spans[0].Name)
	assert.Equal(t, "tabs.select_sub", spans[1].Name)

	a := attrs(spans[0])
	assert.Equal(t, "tab1", a["tabview.main.from"].AsString())
	assert.Equal(t, "tab2", a["tabview.main.to"].AsString())
	assert.Equal(t, "tab2.1", a["tabview.sub.to"].AsString())
	assert.True(t, a["tabview.main.changed"].AsBool())

	a = attrs(spans[1])
	assert.Equal(t, "tab2.2", a["tabview.sub.to"].AsString())
	assert.False(t, a["tabview.main.changed"].AsBool())
}

func TestNewRecorder_DisabledWithoutEndpoint(t *testing.T) {
	r, err := NewRecorder(context.Background(), config.TraceConfig{})
	require.NoError(t, err)
	assert.Nil(t, r)

	// nil recorder is a no-op
	r.Observe(tabs.Transition{})
	assert.NoError(t, r.Shutdown(context.Background()))
}

func TestNewRecorder_WithEndpoint(t *testing.T) {
	r, err := NewRecorder(context.Background(), config.TraceConfig{Endpoint: "localhost:4318"})
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.NoError(t, r.Shutdown(context.Background()))
}
