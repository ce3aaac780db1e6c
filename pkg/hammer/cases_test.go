package hammer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

type recordingSpans struct {
	provider *sdktrace.TracerProvider
	recorder *tracetest.SpanRecorder
	attrs    map[string]interface{}
}

func newRecordingSpans() *recordingSpans {
	recorder := tracetest.NewSpanRecorder()
	return &recordingSpans{
		provider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)),
		recorder: recorder,
	}
}

func (r *recordingSpans) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return r.provider.Tracer("test").Start(ctx, name)
}

func (r *recordingSpans) RecordErrorOnSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func (r *recordingSpans) SetAttributes(_ trace.Span, attrs map[string]interface{}) {
	r.attrs = attrs
}

func TestRun_DispatchesCases(t *testing.T) {
	tests := []struct {
		name    string
		inv     Invocation
		methods []string
	}{
		{"ingest", Invocation{CaseIngest, []string{"i", "f", "4", "2"}}, []string{"Bulk", "Refresh"}},
		{"add_data alias", Invocation{CaseAddData, []string{"i", "f", "4", "2"}}, []string{"Bulk", "Refresh"}},
		{"add_train_data", Invocation{CaseAddTrainData, []string{"i", "f", "4", "2"}}, []string{"CreateIndex", "Bulk", "Refresh"}},
		{"train", Invocation{CaseTrain, []string{"i", "f", "4", "m"}}, []string{"TrainModel"}},
		{"train with description", Invocation{CaseTrain, []string{"i", "f", "4", "m", "desc"}}, []string{"TrainModel"}},
		{"create_model_index", Invocation{CaseCreateModelIndex, []string{"i", "f", "4", "2", "m"}}, []string{"DeleteIndex", "CreateIndex", "Bulk", "Refresh"}},
		{"search", Invocation{CaseSearch, []string{"i", "f", "4", "10", "10", "3"}}, []string{"Search", "Search", "Search"}},
		{"stats", Invocation{CaseStats, nil}, []string{"KNNStats"}},
		{"nodes", Invocation{CaseNodes, nil}, []string{"CatNodes"}},
		{"indices", Invocation{CaseIndices, nil}, []string{"CatIndices"}},
		{"get_model", Invocation{CaseGetModel, []string{"m"}}, []string{"GetModel"}},
		{"delete_model", Invocation{CaseDeleteModel, []string{"m"}}, []string{"DeleteModel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newFakeEngine()
			driver, _ := newTestDriver(t, engine, nil)

			require.NoError(t, driver.Run(context.Background(), tt.inv))
			assert.Equal(t, tt.methods, engine.methods())
		})
	}
}

func TestRun_UnknownCase(t *testing.T) {
	engine := newFakeEngine()
	driver, _ := newTestDriver(t, engine, nil)

	err := driver.Run(context.Background(), Invocation{Case: "explode"})
	require.ErrorIs(t, err, ErrUnknownCase)
	assert.True(t, IsUsageError(err))
	assert.Contains(t, err.Error(), "ingest")
	assert.Empty(t, engine.calls)
}

func TestRun_ArgumentValidation(t *testing.T) {
	tests := []struct {
		name string
		inv  Invocation
	}{
		{"missing ingest args", Invocation{CaseIngest, []string{"i", "f", "4"}}},
		{"extra ingest args", Invocation{CaseIngest, []string{"i", "f", "4", "1", "x"}}},
		{"dimension not a number", Invocation{CaseIngest, []string{"i", "f", "four", "1"}}},
		{"zero dimension", Invocation{CaseIngest, []string{"i", "f", "0", "1"}}},
		{"negative doc count", Invocation{CaseIngest, []string{"i", "f", "4", "-1"}}},
		{"zero k", Invocation{CaseSearch, []string{"i", "f", "4", "0", "1", "1"}}},
		{"bad num_queries", Invocation{CaseSearch, []string{"i", "f", "4", "1", "1", "many"}}},
		{"stats with args", Invocation{CaseStats, []string{"x"}}},
		{"get_model without id", Invocation{CaseGetModel, nil}},
		{"train bad dimension", Invocation{CaseTrain, []string{"i", "f", "x", "m"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newFakeEngine()
			driver, _ := newTestDriver(t, engine, nil)

			err := driver.Run(context.Background(), tt.inv)
			require.ErrorIs(t, err, ErrUsage)
			assert.Empty(t, engine.calls)
		})
	}
}

func TestRun_ModelFeaturesGate(t *testing.T) {
	gated := []Invocation{
		{CaseAddTrainData, []string{"i", "f", "4", "2"}},
		{CaseTrain, []string{"i", "f", "4", "m"}},
		{CaseCreateModelIndex, []string{"i", "f", "4", "2", "m"}},
		{CaseGetModel, []string{"m"}},
		{CaseDeleteModel, []string{"m"}},
	}
	for _, inv := range gated {
		t.Run(inv.Case, func(t *testing.T) {
			engine := newFakeEngine()
			driver, _ := newTestDriver(t, engine, func(c *Config) { c.Capabilities.ModelFeatures = false })

			err := driver.Run(context.Background(), inv)
			require.ErrorIs(t, err, ErrModelFeaturesDisabled)
			assert.False(t, IsUsageError(err))
			assert.Empty(t, engine.calls)
		})
	}

	engine := newFakeEngine()
	driver, _ := newTestDriver(t, engine, func(c *Config) { c.Capabilities.ModelFeatures = false })
	require.NoError(t, driver.Run(context.Background(), Invocation{CaseIngest, []string{"i", "f", "4", "2"}}))
}

func TestRun_RecordsSpan(t *testing.T) {
	spans := newRecordingSpans()
	engine := newFakeEngine()
	engine.errs["KNNStats"] = errors.New("unreachable")
	driver, _ := newTestDriver(t, engine, nil)
	driver.WithTracer(spans)

	require.NoError(t, driver.Run(context.Background(), Invocation{CaseIngest, []string{"i", "f", "4", "2"}}))
	require.Error(t, driver.Run(context.Background(), Invocation{Case: CaseStats}))

	ended := spans.recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "hammer.ingest", ended[0].Name())
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	assert.Equal(t, "hammer.stats", ended[1].Name())
	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, CaseStats, spans.attrs["hammer.case"])
}

func TestPrint_PrettyJSONAndRawCat(t *testing.T) {
	engine := newFakeEngine()
	engine.responses["KNNStats"] = [][]byte{[]byte(`{"nodes":{"n1":{"hit_count":3}}}`)}
	engine.responses["CatNodes"] = [][]byte{[]byte("ip heap.percent name\n10.0.0.1 42 node-1")}
	driver, out := newTestDriver(t, engine, nil)

	require.NoError(t, driver.Stats(context.Background()))
	assert.Equal(t, "{\n  \"nodes\": {\n    \"n1\": {\n      \"hit_count\": 3\n    }\n  }\n}\n", out.String())

	out.Reset()
	require.NoError(t, driver.Nodes(context.Background()))
	assert.Equal(t, "ip heap.percent name\n10.0.0.1 42 node-1\n", out.String())
}

func TestCasesAndUsage(t *testing.T) {
	names := Cases()
	assert.Contains(t, names, CaseCreateModelIndex)
	assert.Len(t, names, 11)

	usage, ok := Usage(CaseSearch)
	require.True(t, ok)
	assert.Equal(t, "<index> <field> <dimension> <k> <size> <num_queries>", usage)

	assert.True(t, IsLoadCase(CaseIngest))
	assert.True(t, IsLoadCase(CaseSearch))
	assert.False(t, IsLoadCase(CaseStats))
	assert.False(t, IsLoadCase("unknown"))
}

func TestNewDriver_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BulkSize = 0
	_, err := NewDriver(cfg, newFakeEngine(), permissiveLogger(t), nil)
	require.Error(t, err)
}
