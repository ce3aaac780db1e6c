package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Config controls how log entries are rendered and where they go.
type Config struct {
	// Level is one of debug, info, warning, error. Anything else -> INFO.
	Level string `yaml:"level" envconfig:"HAMMER_LOG_LEVEL"`

	// Encoding is "console" (human readable, the CLI default) or "json".
	Encoding string `yaml:"encoding" envconfig:"HAMMER_LOG_ENCODING"`

	// OutputPath is a zap sink: "stdout", "stderr" or a file path.
	OutputPath string `yaml:"output_path" envconfig:"HAMMER_LOG_OUTPUT"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"HAMMER_SERVICE_NAME"`
}

// DefaultConfig returns the configuration used by the CLI when nothing is set.
func DefaultConfig() Config {
	return Config{
		Level:       Info,
		Encoding:    EncodingConsole,
		OutputPath:  "stdout",
		ServiceName: "knn-hammer",
	}
}
