// Package normalization maps loosely written configuration values (mixed
// case, stray whitespace, aliases) onto typed enum values.
package normalization

import (
	"fmt"
	"slices"
	"strings"
)

// EnumNormalizer converts strings into values of an enum type T. Several keys
// may map to the same value, which is how aliases are expressed.
type EnumNormalizer[T comparable] struct {
	enumName     string
	values       map[string]T
	defaultValue T
	keys         []string
}

// NewEnumNormalizer creates a normalizer. Keys are matched case-insensitively
// after trimming; enumName appears in error messages.
func NewEnumNormalizer[T comparable](enumName string, values map[string]T, defaultValue T) *EnumNormalizer[T] {
	n := &EnumNormalizer[T]{
		enumName:     enumName,
		values:       make(map[string]T, len(values)),
		defaultValue: defaultValue,
		keys:         make([]string, 0, len(values)),
	}
	for k, v := range values {
		key := clean(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	slices.Sort(n.keys)
	return n
}

// Normalize converts raw to an enum value, returning the default on unknown
// input.
func (n *EnumNormalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[clean(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// NormalizeWithValidation converts raw to an enum value and reports unknown
// input as an error listing the accepted keys.
func (n *EnumNormalizer[T]) NormalizeWithValidation(raw string) (T, error) {
	if v, ok := n.values[clean(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q, valid options: %v", n.enumName, raw, n.keys)
}

// IsValid reports whether raw names a known value.
func (n *EnumNormalizer[T]) IsValid(raw string) bool {
	_, ok := n.values[clean(raw)]
	return ok
}

// ValidValues returns the accepted keys, sorted.
func (n *EnumNormalizer[T]) ValidValues() []string {
	return slices.Clone(n.keys)
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
