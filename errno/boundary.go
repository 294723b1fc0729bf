package errno

// ReturnValue constrains the integer slot types a boundary-facing function
// can hand back to the host. Every member can represent any int16, which is
// what the failure path narrows through.
type ReturnValue interface {
	~int16 | ~int32 | ~int64 | ~int
}

// FromResult runs fn exactly once and translates its Result into the host's
// raw integer return convention: a success value passes through unchanged, a
// failure becomes the negative errno re-widened from an int16.
//
// The narrowing cannot truncate: negative errnos are no smaller than
// -MaxErrno, and -MaxErrno fits in an int16 as checked at build time in
// errno.go. The host ABI owns the guarantee that a legitimate success value
// in the same slot never collides with an encoded error magnitude; this
// layer does not verify it.
func FromResult[T ReturnValue](fn func() Result[T]) T {
	r := fn()
	if !r.isErr {
		return r.val
	}
	return T(int16(r.err))
}
