// Package destination holds the heuristics that decide whether a destination
// string could plausibly name a real place. They run at intake and again
// before a document is rendered.
package destination

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinLength = 2
	MaxLength = 100
)

var (
	ErrTooShort     = errors.New("destination is too short")
	ErrTooLong      = errors.New("destination is too long")
	ErrNumeric      = errors.New("destination cannot be purely numeric")
	ErrPlaceholder  = errors.New("destination is not a recognizable place")
	ErrInvalidChars = errors.New("destination may only contain letters, spaces and punctuation")
)

// Pattern is the character class accepted for a destination: letters, marks,
// spaces and the punctuation found in place names.
var Pattern = regexp.MustCompile(`^[\p{L}\p{M}\s.,'’()\-&/]+$`)

var numeric = regexp.MustCompile(`^[\d\s.,\-+]+$`)

// invalidWords are inputs people type when probing the form.
var invalidWords = map[string]struct{}{
	"test":      {},
	"testing":   {},
	"asdf":      {},
	"qwerty":    {},
	"abc":       {},
	"xyz":       {},
	"aaa":       {},
	"none":      {},
	"null":      {},
	"nil":       {},
	"undefined": {},
	"unknown":   {},
	"nowhere":   {},
	"anywhere":  {},
	"somewhere": {},
	"random":    {},
	"hello":     {},
	"foo":       {},
	"bar":       {},
	"n/a":       {},
	"na":        {},
}

// Validate applies the plausibility heuristics used by the renderer:
// length, numeric-only and the invalid word list.
func Validate(name string) error {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) < MinLength {
		return ErrTooShort
	}
	if numeric.MatchString(trimmed) {
		return ErrNumeric
	}
	if _, bad := invalidWords[strings.ToLower(trimmed)]; bad {
		return ErrPlaceholder
	}
	return nil
}

// ValidateInput is the stricter intake check: Validate plus the maximum
// length and the allowed character class.
func ValidateInput(name string) error {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) > MaxLength {
		return ErrTooLong
	}
	if err := Validate(trimmed); err != nil {
		return err
	}
	if !Pattern.MatchString(trimmed) {
		return ErrInvalidChars
	}
	return nil
}
