package errno

// Unit is the success payload for operations that return nothing.
type Unit = struct{}

// Result is the return shape for fallible boundary operations: either a
// value of T, or exactly one Error. Results are short-lived; they are
// produced by a fallible call and consumed immediately by the caller or by
// FromResult.
type Result[T any] struct {
	val   T
	err   Error
	isErr bool
}

// Ok returns a success Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// Err returns a failure Result carrying e.
func Err[T any](e Error) Result[T] {
	return Result[T]{err: e, isErr: true}
}

// IsErr reports whether the Result is a failure.
func (r Result[T]) IsErr() bool {
	return r.isErr
}

// Value returns the success value, or T's zero value on failure.
func (r Result[T]) Value() T {
	return r.val
}

// Err returns the failure as an error, or nil on success.
func (r Result[T]) Err() error {
	if !r.isErr {
		return nil
	}
	return r.err
}

// Unpack splits the Result into Go's conventional (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	return r.val, r.Err()
}
