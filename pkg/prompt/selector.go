package prompt

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxSelectorLength bounds a selector in bytes. The longest built-in
// selector is "management"; configured preset and template names share it.
const MaxSelectorLength = 64

var (
	ErrSelectorTooLong    = errors.New("selector is too long")
	ErrInvalidUTF8        = errors.New("selector is not valid UTF-8")
	ErrSelectorNotOneWord = errors.New("selector must be a single word")
	ErrControlCharacter   = errors.New("selector contains control characters")
)

// CleanSelector trims a selector read from a user and checks that it can
// name a variant: one word of printable UTF-8, at most MaxSelectorLength
// bytes. An empty selector is returned as is; the factories reject it.
//
// Nothing is stripped or truncated. A repaired selector could match a
// variant the user never typed.
func CleanSelector(input string) (string, error) {
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	s := strings.TrimSpace(input)
	if len(s) > MaxSelectorLength {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrSelectorTooLong, len(s), MaxSelectorLength)
	}

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			return "", fmt.Errorf("%w: %q", ErrSelectorNotOneWord, s)
		case unicode.IsControl(r):
			return "", ErrControlCharacter
		}
	}
	return s, nil
}
