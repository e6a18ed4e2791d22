package errors

import (
	"strings"
	"unicode"
)

// ValidateTypeName validates an element type name before it is used to
// create tree nodes. The rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - Maximum length of 128 characters
func ValidateTypeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "element type name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "element type name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "element type name contains invalid characters")
		}
	}

	return nil
}

// ValidateLineList validates the serialized form of a grid line list
// ("0,100,200"). It rejects empty entries and trailing separators; the
// numeric ordering check belongs to the grid model, which has the parsed
// values.
func ValidateLineList(s string) error {
	if s == "" {
		return New(ErrCodeInvalidGeometry, "line list cannot be empty")
	}

	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			return New(ErrCodeInvalidGeometry, "line list contains an empty entry: %q", s)
		}
	}

	return nil
}
