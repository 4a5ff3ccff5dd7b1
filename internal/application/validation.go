package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// ValidateDepth checks that a unit depth is strictly positive
func ValidateDepth(depth int) error {
	if depth <= 0 {
		return &ValidationError{
			Field:   "depth",
			Message: fmt.Sprintf("depth must be > 0: %d", depth),
		}
	}
	return nil
}

// ValidateFiles checks that at least one non-empty path was supplied
func ValidateFiles(files []string) error {
	if len(files) == 0 {
		return &ValidationError{
			Field:   "files",
			Message: "at least one file is required",
		}
	}
	for i, f := range files {
		if strings.TrimSpace(f) == "" {
			return &ValidationError{
				Field:   "files",
				Message: fmt.Sprintf("file %d is empty", i),
			}
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "baseDir" -> "base directory")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"baseDir": "base directory",
		"unit":    "unit path",
		"writer":  "timestamp writer",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
