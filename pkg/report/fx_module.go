package report

import "go.uber.org/fx"

// FXModule provides *Writer.
//
// Dependencies required by this module:
//   - a report.Config
//   - a report.Logger
//
// Optional:
//   - a report.Uploader, required when Config.Bucket names a bucket
var FXModule = fx.Module("report",
	fx.Provide(NewWriterWithDI),
)

// WriterParams groups the dependencies needed to create a Writer.
type WriterParams struct {
	fx.In

	Config   Config
	Logger   Logger
	Uploader Uploader `optional:"true"`
}

// NewWriterWithDI creates a Writer from injected dependencies.
func NewWriterWithDI(params WriterParams) *Writer {
	return NewWriter(params.Config, params.Uploader, params.Logger)
}
