package hammer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/Aleph-Alpha/knn-hammer/pkg/opensearch"
)

// IngestRequest describes one random-data ingest.
type IngestRequest struct {
	Index     string
	Field     string
	Dimension int
	DocCount  int
}

// IngestResult reports what an ingest sent.
type IngestResult struct {
	Documents int
	Flushes   int
}

// IngestRandomData indexes req.DocCount random vectors with ids "0".."N-1"
// in batches of the configured bulk size, then refreshes the index.
//
// A batch is flushed as soon as it holds bulk-size documents; the trailing
// partial batch is flushed only when it is non-empty, so exactly
// ceil(N/bulk-size) bulk requests are sent. The first failing flush aborts
// the ingest.
func (d *Driver) IngestRandomData(ctx context.Context, req IngestRequest) (IngestResult, error) {
	var res IngestResult

	d.logger.Info("Indexing documents", nil, map[string]interface{}{
		"index":     req.Index,
		"doc_count": req.DocCount,
		"bulk_size": d.cfg.BulkSize,
		"dimension": req.Dimension,
	})

	batch := NewBatch(d.cfg.BulkSize)
	for i := 0; i < req.DocCount; i++ {
		full := batch.Add(opensearch.BulkDocument{
			ID:     strconv.Itoa(i),
			Source: map[string][]float32{req.Field: d.gen.Vector(req.Dimension)},
		})
		if !full {
			continue
		}

		d.logger.Info("Index count", nil, map[string]interface{}{
			"index": req.Index,
			"count": i + 1,
		})
		if err := d.flush(ctx, req.Index, batch); err != nil {
			return res, err
		}
		res.Flushes++
		res.Documents += d.cfg.BulkSize
	}

	if batch.Len() > 0 {
		n := batch.Len()
		if err := d.flush(ctx, req.Index, batch); err != nil {
			return res, err
		}
		res.Flushes++
		res.Documents += n
	}

	if err := d.engine.Refresh(ctx, req.Index); err != nil {
		return res, fmt.Errorf("refresh %s: %w", req.Index, err)
	}

	d.logger.Info(fmt.Sprintf("Indexed %s documents", humanize.Comma(int64(res.Documents))), nil, map[string]interface{}{
		"index":     req.Index,
		"documents": res.Documents,
		"flushes":   res.Flushes,
	})
	return res, nil
}

func (d *Driver) flush(ctx context.Context, index string, batch *Batch) error {
	if err := d.throttle(ctx); err != nil {
		return err
	}
	if _, err := d.engine.Bulk(ctx, index, batch.Docs()); err != nil {
		return fmt.Errorf("bulk into %s: %w", index, err)
	}
	batch.Reset()
	return nil
}
