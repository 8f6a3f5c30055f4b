package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOption is returned when a selector matches none of the expected variants.
var ErrInvalidOption = errors.New("invalid option")

// InvalidOptionError describes a rejected selector.
type InvalidOptionError struct {
	Pattern Pattern  // Pattern whose factory rejected the selector
	Value   string   // The selector as received
	Options []string // Accepted selectors
}

func (e *InvalidOptionError) Error() string {
	if len(e.Options) == 0 {
		return fmt.Sprintf("%s: %q", ErrInvalidOption, e.Value)
	}
	return fmt.Sprintf("%s: %q (expected one of: %s)", ErrInvalidOption, e.Value, strings.Join(e.Options, ", "))
}

// Is reports whether target is ErrInvalidOption.
func (e *InvalidOptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

// NewInvalidOption builds an *InvalidOptionError.
func NewInvalidOption(p Pattern, value string, options ...string) error {
	return &InvalidOptionError{Pattern: p, Value: value, Options: options}
}

// NormalizeSelector trims surrounding whitespace and lower-cases s.
func NormalizeSelector(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
