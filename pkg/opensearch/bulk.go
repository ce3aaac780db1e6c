package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// BulkDocument is one document of a bulk request. Source is encoded as JSON.
type BulkDocument struct {
	ID     string
	Source any
}

// BulkResult summarizes an accepted bulk request.
type BulkResult struct {
	Took  int64
	Items int
}

type bulkAction struct {
	Index bulkActionMeta `json:"index"`
}

type bulkActionMeta struct {
	Index string `json:"_index"`
	ID    string `json:"_id,omitempty"`
}

// EncodeBulk renders documents as the NDJSON body of the bulk API: an index
// action line followed by the source line, each newline-terminated.
func EncodeBulk(index string, docs []BulkDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, doc := range docs {
		if err := enc.Encode(bulkAction{Index: bulkActionMeta{Index: index, ID: doc.ID}}); err != nil {
			return nil, fmt.Errorf("encode bulk action for %q: %w", doc.ID, err)
		}
		if err := enc.Encode(doc.Source); err != nil {
			return nil, fmt.Errorf("encode bulk source for %q: %w", doc.ID, err)
		}
	}
	return buf.Bytes(), nil
}

// Bulk indexes docs into index with one bulk request. A 200 response that
// reports item failures is returned as a *BulkError.
func (c *Client) Bulk(ctx context.Context, index string, docs []BulkDocument) (*BulkResult, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("opensearch: empty bulk request for %s", index)
	}

	body, err := EncodeBulk(index, docs)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, call{
		operation:   "bulk",
		resource:    index,
		method:      http.MethodPost,
		path:        escape(index, "_bulk"),
		contentType: contentTypeNDJSON,
		body:        body,
		metadata:    map[string]interface{}{"documents": len(docs)},
	})
	if err != nil {
		return nil, err
	}

	return parseBulkResponse(index, resp)
}

func parseBulkResponse(index string, resp []byte) (*BulkResult, error) {
	parsed := gjson.ParseBytes(resp)
	items := parsed.Get("items")

	result := &BulkResult{
		Took:  parsed.Get("took").Int(),
		Items: int(items.Get("#").Int()),
	}
	if !parsed.Get("errors").Bool() {
		return result, nil
	}

	bulkErr := &BulkError{Index: index, Total: result.Items}
	items.ForEach(func(_, item gjson.Result) bool {
		errResult := item.Get("*.error")
		if !errResult.Exists() {
			return true
		}
		if bulkErr.Failed == 0 {
			bulkErr.FirstType = errResult.Get("type").String()
			bulkErr.FirstReason = errResult.Get("reason").String()
		}
		bulkErr.Failed++
		return true
	})
	return result, bulkErr
}
