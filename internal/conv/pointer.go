package conv

// Pointer returns a pointer to a copy of value, used for optional arguments.
func Pointer[T any](value T) *T {
	return &value
}
