package gen

import (
	"errors"
	"fmt"
)

// Sentinel errors for the generation pipeline.
var (
	// ErrUnsupportedEnvironment indicates the host compilation does not make
	// the nativecom runtime types resolvable (NC0001).
	ErrUnsupportedEnvironment = errors.New("nativecom: unsupported host environment")
	// ErrValidationFailed indicates one or more declarations were rejected.
	ErrValidationFailed = errors.New("nativecom: validation failed")
	// ErrGenerationFailed indicates an internal emission failure. Reaching it
	// with validator-approved input is an invariant violation, not a
	// user-facing diagnostic.
	ErrGenerationFailed = errors.New("nativecom: code generation failed")
	// ErrInvalidConfig indicates a configuration error.
	ErrInvalidConfig = errors.New("nativecom: invalid configuration")
)

// ConfigError describes a rejected configuration value.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("nativecom: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("nativecom: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}
