package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/fakenews/internal/model"
)

var (
	// ErrEmptyInput is returned when nothing remains after trimming
	ErrEmptyInput = errors.New("empty input")
	// ErrInputTooShort is returned for input below the minimum length
	ErrInputTooShort = errors.New("input too short")
	// ErrInputTooLong is returned for input above the maximum length
	ErrInputTooLong = errors.New("input too long")
	// ErrInvalidURLFormat is returned in URL mode when the input is not http(s)
	ErrInvalidURLFormat = errors.New("invalid URL format")
)

var urlPattern = regexp.MustCompile(`(?i)^https?://.+`)

// Input trims the raw input and checks it against the configured limits.
// It returns the trimmed text that should be passed to the classifier.
func Input(raw string, mode model.Mode, limits model.InputConfig) (string, error) {
	text := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(text)

	if length == 0 {
		return "", ErrEmptyInput
	}

	if limits.MinLength > 0 && length < limits.MinLength {
		return "", fmt.Errorf("%w: %d characters (minimum %d)", ErrInputTooShort, length, limits.MinLength)
	}

	if limits.MaxLength > 0 && length > limits.MaxLength {
		return "", fmt.Errorf("%w: %d characters (maximum %d)", ErrInputTooLong, length, limits.MaxLength)
	}

	if mode == model.ModeURL && !urlPattern.MatchString(text) {
		return "", ErrInvalidURLFormat
	}

	return text, nil
}

// Code returns a stable machine-readable code for a validation error
func Code(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrInputTooShort):
		return "input_too_short"
	case errors.Is(err, ErrInputTooLong):
		return "input_too_long"
	case errors.Is(err, ErrInvalidURLFormat):
		return "invalid_url_format"
	default:
		return ""
	}
}

// IsValidationError reports whether err came from Input
func IsValidationError(err error) bool {
	return Code(err) != ""
}

// UserMessage returns the user-facing message for a validation error
func UserMessage(err error, limits model.InputConfig) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "Please enter text or a URL to analyze."
	case errors.Is(err, ErrInputTooShort):
		return fmt.Sprintf("Please enter at least %d characters for analysis.", limits.MinLength)
	case errors.Is(err, ErrInputTooLong):
		return fmt.Sprintf("Text is too long. Please limit to %d characters.", limits.MaxLength)
	case errors.Is(err, ErrInvalidURLFormat):
		return "Please enter a valid URL starting with http:// or https://"
	default:
		return "An error occurred during analysis. Please try again."
	}
}
