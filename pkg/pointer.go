package pkg

import "strings"

func ToPtr[T any](v T) *T {
	return &v
}

// FromPtr dereferences v, returning the zero value for nil.
func FromPtr[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// NilIfBlank returns nil for an empty or whitespace-only string.
func NilIfBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
