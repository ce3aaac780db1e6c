package opensearch

import (
	"context"
	"net/http"
	"net/url"
)

// Refresh makes recently indexed documents of index searchable.
func (c *Client) Refresh(ctx context.Context, index string) error {
	_, err := c.do(ctx, call{
		operation: "refresh",
		resource:  index,
		method:    http.MethodPost,
		path:      escape(index, "_refresh"),
	})
	return err
}

// CreateIndex creates index with the given settings/mappings body.
func (c *Client) CreateIndex(ctx context.Context, index string, body any) ([]byte, error) {
	cl, err := jsonCall("create_index", index, http.MethodPut, escape(index), body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, cl)
}

// DeleteIndex deletes index. A missing index yields an error for which
// IsNotFound reports true.
func (c *Client) DeleteIndex(ctx context.Context, index string) ([]byte, error) {
	return c.do(ctx, call{
		operation: "delete_index",
		resource:  index,
		method:    http.MethodDelete,
		path:      escape(index),
	})
}

// Search runs a query against index. timeout, when set, is passed as the
// server-side search timeout (e.g. "90s").
func (c *Client) Search(ctx context.Context, index string, body any, timeout string) ([]byte, error) {
	cl, err := jsonCall("search", index, http.MethodPost, escape(index, "_search"), body)
	if err != nil {
		return nil, err
	}
	if timeout != "" {
		cl.query = url.Values{"timeout": []string{timeout}}
		cl.metadata = map[string]interface{}{"timeout": timeout}
	}
	return c.do(ctx, cl)
}

// KNNStats returns the k-NN plugin statistics of all nodes.
func (c *Client) KNNStats(ctx context.Context) ([]byte, error) {
	return c.do(ctx, call{
		operation: "knn_stats",
		method:    http.MethodGet,
		path:      "/_plugins/_knn/stats",
	})
}

// CatNodes returns the human-readable node table.
func (c *Client) CatNodes(ctx context.Context) ([]byte, error) {
	return c.do(ctx, call{
		operation: "cat_nodes",
		method:    http.MethodGet,
		path:      "/_cat/nodes",
		query:     url.Values{"v": []string{"true"}},
	})
}

// CatIndices returns the human-readable index table.
func (c *Client) CatIndices(ctx context.Context) ([]byte, error) {
	return c.do(ctx, call{
		operation: "cat_indices",
		method:    http.MethodGet,
		path:      "/_cat/indices",
		query:     url.Values{"v": []string{"true"}},
	})
}

// TrainModel submits a training request for modelID.
func (c *Client) TrainModel(ctx context.Context, modelID string, body any) ([]byte, error) {
	cl, err := jsonCall("train_model", modelID, http.MethodPost, escape("_plugins", "_knn", "models", modelID, "_train"), body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, cl)
}

// GetModel returns the model document, including its training state.
func (c *Client) GetModel(ctx context.Context, modelID string) ([]byte, error) {
	return c.do(ctx, call{
		operation: "get_model",
		resource:  modelID,
		method:    http.MethodGet,
		path:      escape("_plugins", "_knn", "models", modelID),
	})
}

// DeleteModel removes modelID.
func (c *Client) DeleteModel(ctx context.Context, modelID string) ([]byte, error) {
	return c.do(ctx, call{
		operation: "delete_model",
		resource:  modelID,
		method:    http.MethodDelete,
		path:      escape("_plugins", "_knn", "models", modelID),
	})
}
