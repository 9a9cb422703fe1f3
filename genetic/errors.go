package genetic

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation marks a chromosome that breaks its representation's
// structural rules (wrong length, a route that is not a permutation).
// It signals a programming error in an operator, not a runtime condition.
var ErrInvariantViolation = errors.New("invariant violation")

// ConfigError reports an invalid configuration value. A run must not start
// when one is returned.
type ConfigError struct {
	Field  string // Config key, e.g. "pop_size"
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s %s", e.Field, e.Reason)
}

// configErrorf builds a *ConfigError with a formatted reason.
func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
