package config

import (
	"errors"
	"fmt"
)

// MissingKeyError reports an absent API credential. It is raised before any
// network call so callers can tell configuration mistakes apart from
// transport failures.
type MissingKeyError struct {
	EnvVar string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s environment variable not set", e.EnvVar)
}

// IsMissingKey reports whether err is (or wraps) a MissingKeyError.
func IsMissingKey(err error) bool {
	var mk *MissingKeyError
	return errors.As(err, &mk)
}
