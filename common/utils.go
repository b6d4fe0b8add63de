package common

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Ptr returns a pointer to a copy of v. Handy for optional fields such as limits.
//
// Parameters:
//   - v: the value to point at
//
// Returns:
//   - *T: pointer to a fresh copy of v
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns *p, or fallback when p is nil.
//
// Parameters:
//   - p: the optional value
//   - fallback: value used when p is nil
//
// Returns:
//   - T: the dereferenced value or fallback
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
