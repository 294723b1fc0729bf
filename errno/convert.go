package errno

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// The host boundary has exactly one failure vocabulary: a negative integer.
// The types below are the internal failure kinds that may reach the boundary,
// and From collapses each of them onto one catalogue code. The mapping is
// lossy on purpose; no finer detail crosses outward.

// OverflowError reports an integer value that does not fit the requested
// width. Converts to EINVAL.
type OverflowError struct {
	Value int64
	Bits  int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("value %d overflows int%d", e.Value, e.Bits)
}

// DecodeError reports malformed text at byte offset Off. Converts to EINVAL.
type DecodeError struct {
	Off int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid encoding at byte %d", e.Off)
}

// AllocError reports a failed single allocation. Converts to ENOMEM.
type AllocError struct {
	Size uintptr
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("allocation of %d bytes failed", e.Size)
}

// ReserveError reports a failed bulk-capacity reservation. Converts to ENOMEM.
type ReserveError struct {
	Cap int
}

func (e *ReserveError) Error() string {
	return fmt.Sprintf("reserving capacity %d failed", e.Cap)
}

// From converts any internal failure into a host code. An Error passes
// through unchanged; overflow, decode and strconv range failures become
// EINVAL; allocation and reservation failures become ENOMEM. Anything
// unrecognized becomes EINVAL, the host's generic bad-argument code.
func From(err error) Error {
	var code Error
	if errors.As(err, &code) {
		return code
	}

	var (
		overflow *OverflowError
		decode   *DecodeError
		alloc    *AllocError
		reserve  *ReserveError
	)
	switch {
	case errors.As(err, &overflow), errors.As(err, &decode):
		return EINVAL
	case errors.As(err, &alloc), errors.As(err, &reserve):
		return ENOMEM
	case errors.Is(err, strconv.ErrRange):
		return EINVAL
	default:
		return EINVAL
	}
}

// CastInt32 narrows v to 32 bits, failing with *OverflowError when v is out
// of range.
func CastInt32(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &OverflowError{Value: v, Bits: 32}
	}
	return int32(v), nil
}

// CastInt16 narrows v to 16 bits, failing with *OverflowError when v is out
// of range.
func CastInt16(v int64) (int16, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, &OverflowError{Value: v, Bits: 16}
	}
	return int16(v), nil
}

// DecodeString validates b as UTF-8 and returns it as a string. A malformed
// sequence fails with *DecodeError pointing at the first bad byte.
func DecodeString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		off := 0
		for off < len(b) {
			r, size := utf8.DecodeRune(b[off:])
			if r == utf8.RuneError && size == 1 {
				break
			}
			off += size
		}
		return "", &DecodeError{Off: off}
	}
	return string(b), nil
}
