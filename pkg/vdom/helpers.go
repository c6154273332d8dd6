package vdom

import "fmt"

// Child helpers return values meant to be passed to H as children. Nil and
// false render as nothing under a tag, so a helper that "renders nothing"
// simply returns nil.

// Textf creates formatted text.
func Textf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// If returns the child if condition is true, nil otherwise.
func If(condition bool, child any) any {
	if condition {
		return child
	}
	return nil
}

// IfElse returns the first child if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() any) any {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
// Returns the child if condition is false.
func Unless(condition bool, child any) any {
	if !condition {
		return child
	}
	return nil
}

// Case represents a case in a Switch statement.
type Case[T comparable] struct {
	Value     T
	Child     any
	IsDefault bool
}

// Case_ creates a case for Switch.
func Case_[T comparable](value T, child any) Case[T] {
	return Case[T]{Value: value, Child: child}
}

// Default creates a default case for Switch.
func Default[T comparable](child any) Case[T] {
	return Case[T]{Child: child, IsDefault: true}
}

// Switch returns the child for the matching case value.
// If no case matches and there's a default, the default child is returned.
func Switch[T comparable](value T, cases ...Case[T]) any {
	for _, c := range cases {
		if !c.IsDefault && c.Value == value {
			return c.Child
		}
	}
	for _, c := range cases {
		if c.IsDefault {
			return c.Child
		}
	}
	return nil
}

// Range maps a slice to children. The result is a nested child list, which
// H flattens in place.
func Range[T any](items []T, fn func(item T, index int) any) []any {
	result := make([]any, 0, len(items))
	for i, item := range items {
		result = append(result, fn(item, i))
	}
	return result
}

// Repeat creates n children using the given function.
func Repeat(n int, fn func(i int) any) []any {
	if n <= 0 {
		return nil
	}
	result := make([]any, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, fn(i))
	}
	return result
}

// Either returns first if it's not nil, otherwise second.
func Either(first, second any) any {
	if first != nil {
		return first
	}
	return second
}
