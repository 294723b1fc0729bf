package errno

import "unsafe"

// PtrCodec is the host runtime's view of its error-pointer encoding: a
// reserved range of pointer bit-patterns carries an errno instead of an
// address. Both methods inspect the bit pattern only and never dereference.
// The encoding is platform- and build-specific, so it is never reimplemented
// on the Go side; bridge.Bridge provides the real implementation.
type PtrCodec interface {
	// IsErr reports whether p falls in the reserved error-encoding range.
	IsErr(p unsafe.Pointer) bool
	// PtrErr extracts the encoded error from p. Only meaningful when IsErr
	// reported true, in which case the value is negative and no smaller
	// than -MaxErrno.
	PtrErr(p unsafe.Pointer) int64
}

// FromErrPtr decodes a pointer returned by the host: a pointer outside the
// error range comes back unchanged as a success, one inside it comes back as
// a failure carrying the encoded errno.
func FromErrPtr[T any](codec PtrCodec, ptr *T) Result[*T] {
	p := unsafe.Pointer(ptr)
	if !codec.IsErr(p) {
		return Ok(ptr)
	}
	// The extractor's value fits an int16 per the MaxErrno invariant, so the
	// round trip through int16 is exact.
	return Err[*T](FromErrno(int32(int16(codec.PtrErr(p)))))
}
