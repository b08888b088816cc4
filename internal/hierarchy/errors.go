package hierarchy

import "errors"

// ErrMissingItems reports a root level without an items list.
var ErrMissingItems = errors.New("root level has no items list")

// ConfigurationError is returned when a hierarchy cannot produce a menu at all.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "menu configuration: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
