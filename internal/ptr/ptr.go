package ptr

// Ref returns a pointer to v.
//
// Useful for taking the address of literals and function results.
func Ref[T any](v T) *T {
	return &v
}
