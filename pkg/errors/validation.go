package errors

import (
	"strings"
	"unicode"
)

// maxCategoryLength bounds a single category phrase. Anything longer cannot
// be laid out legibly on a card at any font size.
const maxCategoryLength = 256

// ValidateCategory checks that a category phrase can be printed on a card.
//
// Rules:
//   - Not empty or whitespace-only
//   - No control characters (tabs, newlines, null bytes)
//   - At most 256 bytes
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return New(ErrCodeInvalidInput, "category cannot be empty")
	}

	if len(category) > maxCategoryLength {
		return New(ErrCodeInvalidInput, "category too long (max %d characters)", maxCategoryLength)
	}

	for _, r := range category {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "category %q contains control characters", category)
		}
	}

	return nil
}

// ValidateExtension checks that ext (without the leading dot) is one of the
// allowed extensions. Matching is case-insensitive.
func ValidateExtension(ext string, allowed ...string) error {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	if ext == "" {
		return New(ErrCodeInvalidFormat, "missing file extension (must be one of: %s)", strings.Join(allowed, ", "))
	}
	return New(ErrCodeInvalidFormat, "invalid extension: %q (must be one of: %s)", ext, strings.Join(allowed, ", "))
}
