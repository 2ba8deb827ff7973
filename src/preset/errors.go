package preset

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("invalid preset")

	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("preset not found")

	ErrEmptyRegistry = errors.New("registry has no presets")
)

// ValidationError reports the first entry that failed validation during Load.
type ValidationError struct {
	Index       int
	DisplayName string
	Field       string
	Reason      string
}

func (e *ValidationError) Error() string {
	if e.DisplayName != "" {
		return fmt.Sprintf("preset #%d (%q): %s: %s", e.Index, e.DisplayName, e.Field, e.Reason)
	}
	return fmt.Sprintf("preset #%d: %s: %s", e.Index, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError is returned by Get when no preset has the requested name.
type NotFoundError struct {
	DisplayName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no preset named %q", e.DisplayName)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// VersionError is returned when a preset file declares a format version
// this build cannot read.
type VersionError struct {
	Version string
	Reason  string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("preset file version %q: %s", e.Version, e.Reason)
}
