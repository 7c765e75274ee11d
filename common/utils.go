package common

import (
	"path/filepath"
	"strings"
)

// Coalesce returns the first value that is not the zero value of T.
// When every value is zero, or none are given, the zero value is returned.
//
// Parameters:
//   - values: candidate values in order of preference
//
// Returns:
//   - T: the first non-zero candidate
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// ModelName derives a model name from a file path: the base name without its extension.
//
// Parameters:
//   - path: the model file path
//
// Returns:
//   - string: the name, e.g. "teapot" for "assets/teapot.obj"
func ModelName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
