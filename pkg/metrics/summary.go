package metrics

import (
	"fmt"
	"io"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// OperationStats summarizes the recorded calls of one operation.
type OperationStats struct {
	Operation string        `json:"operation"`
	Count     int           `json:"count"`
	Errors    int           `json:"errors"`
	Total     time.Duration `json:"total_ns"`
	Avg       time.Duration `json:"avg_ns"`
	P50       time.Duration `json:"p50_ns"`
	P95       time.Duration `json:"p95_ns"`
	P99       time.Duration `json:"p99_ns"`
	Max       time.Duration `json:"max_ns"`
}

// Throughput returns completed calls per second of accumulated call time.
func (s OperationStats) Throughput() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Count) / s.Total.Seconds()
}

// LatencyRecorder keeps every observed duration per operation.
// Runs are bounded by the invocation arguments, so nothing is sampled.
type LatencyRecorder struct {
	mu     sync.Mutex
	order  []string
	byOp   map[string][]time.Duration
	errors map[string]int
}

// NewLatencyRecorder returns an empty recorder.
func NewLatencyRecorder() *LatencyRecorder {
	return &LatencyRecorder{
		byOp:   make(map[string][]time.Duration),
		errors: make(map[string]int),
	}
}

// Record stores one observation.
func (r *LatencyRecorder) Record(operation string, d time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byOp[operation]; !ok {
		r.order = append(r.order, operation)
	}
	r.byOp[operation] = append(r.byOp[operation], d)
	if err != nil {
		r.errors[operation]++
	}
}

// Snapshot returns the stats of every operation in first-seen order.
func (r *LatencyRecorder) Snapshot() []OperationStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]OperationStats, 0, len(r.order))
	for _, op := range r.order {
		out = append(out, summarize(op, r.byOp[op], r.errors[op]))
	}
	return out
}

func summarize(op string, durations []time.Duration, errs int) OperationStats {
	stats := OperationStats{Operation: op, Count: len(durations), Errors: errs}
	if len(durations) == 0 {
		return stats
	}

	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for _, d := range sorted {
		stats.Total += d
	}
	stats.Avg = stats.Total / time.Duration(len(sorted))
	stats.P50 = percentile(sorted, 0.50)
	stats.P95 = percentile(sorted, 0.95)
	stats.P99 = percentile(sorted, 0.99)
	stats.Max = sorted[len(sorted)-1]
	return stats
}

// percentile uses the nearest-rank method on an ascending slice.
func percentile(sorted []time.Duration, p float64) time.Duration {
	rank := int(math.Ceil(p * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}

// RenderTable writes the summary of all operations as an ASCII table.
func RenderTable(w io.Writer, stats []OperationStats) {
	if len(stats) == 0 {
		return
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"operation", "calls", "errors", "avg", "p50", "p95", "p99", "max", "calls/s"})
	for _, s := range stats {
		tw.Append([]string{
			s.Operation,
			humanize.Comma(int64(s.Count)),
			humanize.Comma(int64(s.Errors)),
			formatMillis(s.Avg),
			formatMillis(s.P50),
			formatMillis(s.P95),
			formatMillis(s.P99),
			formatMillis(s.Max),
			fmt.Sprintf("%5.2f", s.Throughput()),
		})
	}
	tw.Render()
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
