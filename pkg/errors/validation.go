package errors

import (
	"strings"
	"unicode"
)

// MaxRows is the tallest panel array a serpentine harness is planned for.
const MaxRows = 4

// ValidateDimensions checks a grid size against the supported bounds:
// at least one column and between 1 and [MaxRows] rows.
func ValidateDimensions(cols, rows int) error {
	if cols < 1 {
		return New(ErrCodeInvalidDimensions, "cols must be at least 1, got %d", cols)
	}
	if rows < 1 || rows > MaxRows {
		return New(ErrCodeInvalidDimensions, "rows must be between 1 and %d, got %d", MaxRows, rows)
	}
	return nil
}

// ValidateRunLength checks that a configured run length is positive.
// A run length of zero would make every order a run boundary and is
// treated as a misconfiguration rather than a special value.
func ValidateRunLength(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidPolicy, "max run length must be positive, got %d", n)
	}
	return nil
}

// ValidateFeedPoints checks that the number of trunk feed cables is not negative.
func ValidateFeedPoints(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidPolicy, "feed points cannot be negative, got %d", n)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidInput, "output path must name a file, not a directory")
	}

	return nil
}
