package feed

import (
	"errors"
	"strings"
)

// DefaultCategory is selected on mount
const DefaultCategory = "general"

// ErrUnknownCategory is returned when a category outside the fixed set is selected
var ErrUnknownCategory = errors.New("unknown category")

var categories = []string{
	"general",
	"business",
	"entertainment",
	"health",
	"science",
	"sports",
	"technology",
}

// Categories returns the selectable categories in display order
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// IsCategory reports whether c is one of the selectable categories
func IsCategory(c string) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryLabel capitalizes a category for display
func CategoryLabel(c string) string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(c[:1]) + c[1:]
}
