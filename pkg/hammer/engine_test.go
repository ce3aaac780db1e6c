package hammer

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/knn-hammer/pkg/opensearch"
)

type engineCall struct {
	Method  string
	Index   string
	ModelID string
	Docs    []opensearch.BulkDocument
	Body    any
	Timeout string
}

// fakeEngine records every call. Responses and errors are keyed by method.
type fakeEngine struct {
	mu        sync.Mutex
	calls     []engineCall
	responses map[string][][]byte
	errs      map[string]error
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{responses: map[string][][]byte{}, errs: map[string]error{}}
}

func (f *fakeEngine) record(c engineCall) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	if err := f.errs[c.Method]; err != nil {
		return nil, err
	}
	queue := f.responses[c.Method]
	if len(queue) == 0 {
		return []byte(`{"acknowledged":true}`), nil
	}
	resp := queue[0]
	if len(queue) > 1 {
		f.responses[c.Method] = queue[1:]
	}
	return resp, nil
}

func (f *fakeEngine) callsOf(method string) []engineCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []engineCall
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeEngine) methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Method)
	}
	return out
}

func (f *fakeEngine) Bulk(_ context.Context, index string, docs []opensearch.BulkDocument) (*opensearch.BulkResult, error) {
	// the driver reuses the batch slice
	copied := append([]opensearch.BulkDocument(nil), docs...)
	if _, err := f.record(engineCall{Method: "Bulk", Index: index, Docs: copied}); err != nil {
		return nil, err
	}
	return &opensearch.BulkResult{Items: len(docs)}, nil
}

func (f *fakeEngine) Refresh(_ context.Context, index string) error {
	_, err := f.record(engineCall{Method: "Refresh", Index: index})
	return err
}

func (f *fakeEngine) CreateIndex(_ context.Context, index string, body any) ([]byte, error) {
	return f.record(engineCall{Method: "CreateIndex", Index: index, Body: body})
}

func (f *fakeEngine) DeleteIndex(_ context.Context, index string) ([]byte, error) {
	return f.record(engineCall{Method: "DeleteIndex", Index: index})
}

func (f *fakeEngine) Search(_ context.Context, index string, body any, timeout string) ([]byte, error) {
	return f.record(engineCall{Method: "Search", Index: index, Body: body, Timeout: timeout})
}

func (f *fakeEngine) KNNStats(_ context.Context) ([]byte, error) {
	return f.record(engineCall{Method: "KNNStats"})
}

func (f *fakeEngine) CatNodes(_ context.Context) ([]byte, error) {
	return f.record(engineCall{Method: "CatNodes"})
}

func (f *fakeEngine) CatIndices(_ context.Context) ([]byte, error) {
	return f.record(engineCall{Method: "CatIndices"})
}

func (f *fakeEngine) TrainModel(_ context.Context, modelID string, body any) ([]byte, error) {
	return f.record(engineCall{Method: "TrainModel", ModelID: modelID, Body: body})
}

func (f *fakeEngine) GetModel(_ context.Context, modelID string) ([]byte, error) {
	return f.record(engineCall{Method: "GetModel", ModelID: modelID})
}

func (f *fakeEngine) DeleteModel(_ context.Context, modelID string) ([]byte, error) {
	return f.record(engineCall{Method: "DeleteModel", ModelID: modelID})
}

var _ Engine = (*fakeEngine)(nil)
var _ Engine = (*opensearch.Client)(nil)

func permissiveLogger(t *testing.T) *MockLogger {
	ctrl := gomock.NewController(t)
	mockLogger := NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return mockLogger
}

// asJSON round-trips v through encoding/json so tests can inspect bodies
// the way the cluster sees them.
func asJSON(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func bulkDoc(id string) opensearch.BulkDocument {
	return opensearch.BulkDocument{ID: id, Source: map[string]any{}}
}
