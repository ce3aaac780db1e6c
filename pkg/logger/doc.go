// Package logger provides structured logging for knn-hammer.
//
// It wraps go.uber.org/zap behind a small method set that every other package
// depends on through a local Logger interface:
//
//	Info(msg string, err error, fields ...map[string]interface{})
//	Debug(msg string, err error, fields ...map[string]interface{})
//	Warn(msg string, err error, fields ...map[string]interface{})
//	Error(msg string, err error, fields ...map[string]interface{})
//	Fatal(msg string, err error, fields ...map[string]interface{})
//
// Basic Usage:
//
//	log, err := logger.NewLoggerClient(logger.Config{
//		Level:    "info",
//		Encoding: "console",
//	})
//	if err != nil {
//		return err
//	}
//	log.Info("Indexing documents", nil, map[string]interface{}{
//		"index": "target_index",
//	})
//
// Configuration:
//
// The logger can be configured via environment variables:
//
//	HAMMER_LOG_LEVEL=debug       # debug, info, warning, error
//	HAMMER_LOG_ENCODING=json     # console (default) or json
//	HAMMER_LOG_OUTPUT=stderr     # stdout (default), stderr or a file path
//
// Progress lines of the load cases are written at INFO level, so running with
// HAMMER_LOG_LEVEL=warning silences them while keeping failures visible.
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Supply(logger.DefaultConfig()),
//	)
//
// All methods are safe for concurrent use.
package logger
