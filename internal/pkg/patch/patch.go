package patch

// Coalesce returns *ptr when set, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Ptr is a convenience for optional request fields and test fixtures.
func Ptr[T any](v T) *T {
	return &v
}
