// Package opensearch is a small REST client for an OpenSearch-compatible
// cluster and its k-NN plugin.
//
// It covers exactly the endpoints a load run needs:
//
//	POST   /{index}/_bulk                       Bulk
//	POST   /{index}/_refresh                    Refresh
//	PUT    /{index}                             CreateIndex
//	DELETE /{index}                             DeleteIndex
//	POST   /{index}/_search?timeout=            Search
//	GET    /_plugins/_knn/stats                 KNNStats
//	POST   /_plugins/_knn/models/{id}/_train    TrainModel
//	GET    /_plugins/_knn/models/{id}           GetModel
//	DELETE /_plugins/_knn/models/{id}           DeleteModel
//	GET    /_cat/nodes?v                        CatNodes
//	GET    /_cat/indices?v                      CatIndices
//
// Basic Usage:
//
//	client, err := opensearch.NewClient(opensearch.Config{
//		Connection: opensearch.ConnectionConfig{
//			Host:               "localhost",
//			Port:               9200,
//			UseSSL:             true,
//			InsecureSkipVerify: true,
//			Username:           "admin",
//			Password:           "admin",
//		},
//	}, log, nil)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	_, err = client.Bulk(ctx, "target_index", []opensearch.BulkDocument{
//		{ID: "0", Source: map[string][]float32{"target_field": {0.1, 0.2}}},
//	})
//
// Errors:
//
// Non-2xx responses are returned as *ResponseError carrying the status code
// and body; IsNotFound reports 404s. A bulk response with "errors": true is
// returned as *BulkError, which matches ErrBulkItems.
//
// Retries are off unless ConnectionConfig.Retries is positive. Failed calls
// are otherwise surfaced immediately.
//
// # Observability
//
// When an observer is attached with WithObserver, every call is reported
// with Component "opensearch", the operation name (bulk, refresh, search,
// create_index, delete_index, knn_stats, cat_nodes, cat_indices,
// train_model, get_model, delete_model), the index or model id as Resource,
// the request body size, duration and error.
package opensearch
