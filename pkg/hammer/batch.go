package hammer

import "github.com/Aleph-Alpha/knn-hammer/pkg/opensearch"

// Batch accumulates bulk documents until it holds size of them.
type Batch struct {
	size int
	docs []opensearch.BulkDocument
}

// NewBatch returns an empty batch that is full at size documents.
func NewBatch(size int) *Batch {
	return &Batch{size: size, docs: make([]opensearch.BulkDocument, 0, size)}
}

// Add appends doc and reports whether the batch is now full.
func (b *Batch) Add(doc opensearch.BulkDocument) bool {
	b.docs = append(b.docs, doc)
	return len(b.docs) >= b.size
}

// Len returns the number of buffered documents.
func (b *Batch) Len() int {
	return len(b.docs)
}

// Docs returns the buffered documents. The slice is reused after Reset.
func (b *Batch) Docs() []opensearch.BulkDocument {
	return b.docs
}

// Reset empties the batch, keeping its capacity.
func (b *Batch) Reset() {
	b.docs = b.docs[:0]
}
