package validation

import (
	"strings"
)

// ValidateTitle validates the required name/title of a goal or skill
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return Error("title is required")
	}

	if len(trimmed) > 120 {
		return Error("title is too long (max 120 characters)")
	}

	return nil
}
