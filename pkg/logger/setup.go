package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// Logger is a wrapper around Uber's Zap logger.
type Logger struct {
	Zap *zap.Logger
}

// NewLoggerClient initializes and returns a new instance of the logger based on configuration.
func NewLoggerClient(cfg Config) (*Logger, error) {

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	output := cfg.OutputPath
	if output == "" {
		output = "stdout"
	}

	encoding := cfg.Encoding
	switch encoding {
	case EncodingJSON:
	case EncodingConsole, "":
		encoding = EncodingConsole
		if colorLevels(output) {
			encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		encoderCfg.ConsoleSeparator = " "
	default:
		return nil, fmt.Errorf("logger: unsupported encoding %q", cfg.Encoding)
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(levelFor(cfg.Level)),
		Development:       false,
		DisableCaller:     encoding == EncodingConsole,
		DisableStacktrace: true,
		Sampling:          nil,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			output,
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
	}
	if encoding == EncodingJSON {
		config.InitialFields = map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		}
	}

	opts := []zap.Option{zap.AddCallerSkip(1)}
	if !config.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}

	logger, err := config.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}

	return &Logger{Zap: logger}, nil
}

// NewNop returns a Logger that discards everything. Useful in tests.
func NewNop() *Logger {
	return &Logger{Zap: zap.NewNop()}
}

// colorLevels reports whether output is a terminal that renders ANSI colors.
func colorLevels(output string) bool {
	switch output {
	case "stdout":
		return isTerminal(int(os.Stdout.Fd()))
	case "stderr":
		return isTerminal(int(os.Stderr.Fd()))
	}
	return false
}

func levelFor(level string) zapcore.Level {
	switch level {
	case Debug:
		return zap.DebugLevel
	case Warning:
		return zap.WarnLevel
	case Error:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
