package chat

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxMessageLength = 1000

// Validation is the tagged result of an input validator: either valid
// with the normalized value, or invalid with a reason.
type Validation[T any] struct {
	Valid  bool
	Value  T
	Reason string
}

func valid[T any](value T) Validation[T] {
	return Validation[T]{Valid: true, Value: value}
}

func invalid[T any](reason string) Validation[T] {
	return Validation[T]{Reason: reason}
}

// ValidateMessageText trims the raw text and accepts between 1 and 1000
// characters.
func ValidateMessageText(raw string) Validation[string] {
	text := strings.TrimSpace(raw)

	if text == "" {
		return invalid[string]("text is required")
	}

	if utf8.RuneCountInString(text) > maxMessageLength {
		return invalid[string]("text exceeds maximum length")
	}

	return valid(text)
}

// ValidateMessageID accepts a positive integer message id.
func ValidateMessageID(raw string) Validation[uint] {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return invalid[uint]("id must be an integer")
	}

	if id == 0 {
		return invalid[uint]("id must be positive")
	}

	return valid(uint(id))
}
