package hammer

import (
	"context"
	"fmt"
)

// QueryRequest describes a k-NN query run.
type QueryRequest struct {
	Index      string
	Field      string
	Dimension  int
	K          int
	Size       int
	NumQueries int
}

// RunQueries issues exactly req.NumQueries k-NN queries, each with a fresh
// random vector. Results are discarded; the run is a throughput probe.
func (d *Driver) RunQueries(ctx context.Context, req QueryRequest) (int, error) {
	d.logger.Info("Running queries", nil, map[string]interface{}{
		"index":       req.Index,
		"num_queries": req.NumQueries,
		"k":           req.K,
		"size":        req.Size,
	})

	for i := 0; i < req.NumQueries; i++ {
		if (i+1)%d.cfg.QueryProgressEvery == 0 {
			d.logger.Info("Running query", nil, map[string]interface{}{
				"query": i + 1,
			})
		}

		if err := d.throttle(ctx); err != nil {
			return i, err
		}

		query := NewKNNQuery(req.Field, d.gen.Vector(req.Dimension), req.K, req.Size)
		if _, err := d.engine.Search(ctx, req.Index, query, d.cfg.SearchTimeout); err != nil {
			return i, fmt.Errorf("query %d against %s: %w", i+1, req.Index, err)
		}
	}
	return req.NumQueries, nil
}
