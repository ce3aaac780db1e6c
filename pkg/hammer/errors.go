package hammer

import "errors"

var (
	// ErrUsage is returned when a case gets missing or malformed arguments.
	ErrUsage = errors.New("hammer: invalid arguments")

	// ErrUnknownCase is returned for a case name the driver does not know.
	ErrUnknownCase = errors.New("hammer: unknown case")

	// ErrModelFeaturesDisabled is returned when a model case runs without
	// the ModelFeatures capability.
	ErrModelFeaturesDisabled = errors.New("hammer: model features are disabled")

	// ErrModelTrainingFailed is returned when a waited-for model ends in the failed state.
	ErrModelTrainingFailed = errors.New("hammer: model training failed")
)

// IsUsageError checks if the error was caused by the invocation itself.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUsage) || errors.Is(err, ErrUnknownCase)
}
