package metrics

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatencyRecorder_Snapshot(t *testing.T) {
	r := NewLatencyRecorder()
	for i := 1; i <= 100; i++ {
		r.Record("search", time.Duration(i)*time.Millisecond, nil)
	}
	r.Record("bulk", 40*time.Millisecond, errors.New("boom"))
	r.Record("bulk", 20*time.Millisecond, nil)

	stats := r.Snapshot()
	require.Len(t, stats, 2)

	search := stats[0]
	assert.Equal(t, "search", search.Operation)
	assert.Equal(t, 100, search.Count)
	assert.Equal(t, 0, search.Errors)
	assert.Equal(t, 50*time.Millisecond, search.P50)
	assert.Equal(t, 95*time.Millisecond, search.P95)
	assert.Equal(t, 99*time.Millisecond, search.P99)
	assert.Equal(t, 100*time.Millisecond, search.Max)
	assert.Equal(t, 50500*time.Microsecond, search.Avg)

	bulk := stats[1]
	assert.Equal(t, "bulk", bulk.Operation)
	assert.Equal(t, 2, bulk.Count)
	assert.Equal(t, 1, bulk.Errors)
	assert.Equal(t, 20*time.Millisecond, bulk.P50)
	assert.Equal(t, 40*time.Millisecond, bulk.Max)
}

func TestPercentile_SingleValue(t *testing.T) {
	sorted := []time.Duration{7 * time.Millisecond}
	assert.Equal(t, 7*time.Millisecond, percentile(sorted, 0.5))
	assert.Equal(t, 7*time.Millisecond, percentile(sorted, 0.99))
	assert.Equal(t, 7*time.Millisecond, percentile(sorted, 0))
}

func TestOperationStats_Throughput(t *testing.T) {
	assert.Zero(t, OperationStats{}.Throughput())
	assert.InDelta(t, 4.0, OperationStats{Count: 8, Total: 2 * time.Second}.Throughput(), 1e-9)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, nil)
	assert.Empty(t, buf.String())

	RenderTable(&buf, []OperationStats{{Operation: "bulk", Count: 1200, P50: 3 * time.Millisecond}})
	out := buf.String()
	assert.Contains(t, out, "OPERATION")
	assert.Contains(t, out, "bulk")
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "3.00ms")
}
