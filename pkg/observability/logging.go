package observability

// Logger is the part of the application logger the log observer writes to.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
}

// LogObserver writes one debug line per operation.
type LogObserver struct {
	logger Logger
}

// NewLogObserver returns an Observer that logs every operation at debug level.
func NewLogObserver(logger Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// ObserveOperation implements Observer.
func (o *LogObserver) ObserveOperation(ctx OperationContext) {
	if o == nil || o.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"component":   ctx.Component,
		"operation":   ctx.Operation,
		"duration_ms": ctx.Duration.Milliseconds(),
		"size":        ctx.Size,
	}
	if ctx.Resource != "" {
		fields["resource"] = ctx.Resource
	}
	for k, v := range ctx.Metadata {
		if _, taken := fields[k]; !taken {
			fields[k] = v
		}
	}
	o.logger.Debug("Operation", ctx.Error, fields)
}

var _ Observer = (*LogObserver)(nil)
