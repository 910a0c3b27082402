package todo

import (
	"strings"
	"unicode/utf8"
)

// Field length limits, counted in runes after trimming surrounding whitespace.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)

// NormalizeTitle trims surrounding whitespace and enforces the 1..MaxTitleLen
// length constraint.
func NormalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrTitleRequired
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLen {
		return "", ErrTitleTooLong
	}
	return trimmed, nil
}

// NormalizeDescription trims surrounding whitespace and enforces the
// MaxDescriptionLen constraint. An empty description is allowed.
func NormalizeDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if utf8.RuneCountInString(trimmed) > MaxDescriptionLen {
		return "", ErrDescriptionTooLong
	}
	return trimmed, nil
}
