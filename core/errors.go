package core

import "errors"

var (
	// ErrInvalidURL is returned when an input string cannot be parsed as a URL.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrNoIdentifier is returned when no extraction strategy produced a
	// usable listing identifier. This is the only fatal extraction outcome;
	// every other field degrades to absent.
	ErrNoIdentifier = errors.New("no listing identifier found")

	// ErrInvalidIdentifier is returned when a candidate identifier fails the
	// 10-character uppercase-alphanumeric check.
	ErrInvalidIdentifier = errors.New("identifier must be 10 uppercase alphanumeric characters")

	// ErrMissingTarget is returned when the markdown assembler is asked to
	// link to an empty URL.
	ErrMissingTarget = errors.New("markdown link target is empty")
)
