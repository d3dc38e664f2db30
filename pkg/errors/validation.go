package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePath validates a configured file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// Absolute paths and parent references are allowed; the paths come from the
// operator, not from untrusted input.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// fillRegex matches fill values that are safe to place inside a quoted
// attribute: hex colors and plain color keywords.
var fillRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{8}|[a-zA-Z]+)$`)

// ValidateFill validates a marker fill color.
func ValidateFill(fill string) error {
	if fill == "" {
		return New(ErrCodeInvalidConfig, "fill color cannot be empty")
	}
	if !fillRegex.MatchString(fill) {
		return New(ErrCodeInvalidConfig, "invalid fill color: %q", fill)
	}
	return nil
}
