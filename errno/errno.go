// Package errno models the host runtime's integer error convention as typed
// Go values: a negative errno wrapped in Error, a Result carrying either a
// value or an Error, and adapters that translate both directions at the
// foreign-function boundary.
package errno

import (
	"fmt"
	"math"
	"sort"
)

// Error is one host error code: a signed integer whose negative magnitude
// matches a symbolic constant from the host's errno table. The zero value is
// not an error in the host convention; construction trusts the caller to
// follow the ABI (negative = error magnitude).
type Error int32

// Named codes, each the negation of the host symbolic constant
// (errno-base.h values, plus ERESTARTSYS from the host's internal table).
const (
	EPERM       Error = -1   // operation not permitted
	ENOENT      Error = -2   // no such file or directory
	ESRCH       Error = -3   // no such process
	EINTR       Error = -4   // interrupted system call
	EIO         Error = -5   // I/O error
	ENXIO       Error = -6   // no such device or address
	E2BIG       Error = -7   // argument list too long
	ENOEXEC     Error = -8   // exec format error
	EBADF       Error = -9   // bad file number
	ECHILD      Error = -10  // no child processes
	EAGAIN      Error = -11  // try again
	ENOMEM      Error = -12  // out of memory
	EACCES      Error = -13  // permission denied
	EFAULT      Error = -14  // bad address
	ENOTBLK     Error = -15  // block device required
	EBUSY       Error = -16  // device or resource busy
	EEXIST      Error = -17  // file exists
	EXDEV       Error = -18  // cross-device link
	ENODEV      Error = -19  // no such device
	ENOTDIR     Error = -20  // not a directory
	EISDIR      Error = -21  // is a directory
	EINVAL      Error = -22  // invalid argument
	ENFILE      Error = -23  // file table overflow
	EMFILE      Error = -24  // too many open files
	ENOTTY      Error = -25  // not a typewriter
	ETXTBSY     Error = -26  // text file busy
	EFBIG       Error = -27  // file too large
	ENOSPC      Error = -28  // no space left on device
	ESPIPE      Error = -29  // illegal seek
	EROFS       Error = -30  // read-only file system
	EMLINK      Error = -31  // too many links
	EPIPE       Error = -32  // broken pipe
	EDOM        Error = -33  // math argument out of domain
	ERANGE      Error = -34  // math result not representable
	ERESTARTSYS Error = -512 // restart the system call
)

// MaxErrno mirrors the host's maximum declared error magnitude (MAX_ERRNO).
// Every errno the host produces satisfies 0 < magnitude <= MaxErrno.
const MaxErrno = 4095

// Invariant: -MaxErrno fits in an int16. The narrowing in FromResult and
// FromErrPtr relies on it. A violation makes this constant negative, which
// does not compile.
const _ uint = math.MaxInt16 - MaxErrno

// FromErrno wraps a raw host error code. The value is trusted to follow the
// host ABI; no range validation happens per value.
func FromErrno(code int32) Error {
	return Error(code)
}

// Errno returns the raw host error code.
func (e Error) Errno() int32 {
	return int32(e)
}

// Name returns the symbolic name of the code, or "" if the code is not in
// the catalogue.
func (e Error) Name() string {
	return catalogue[e].name
}

func (e Error) Error() string {
	if c := catalogue[e]; c.name != "" {
		return c.text
	}
	return fmt.Sprintf("errno %d", int32(e))
}

type codeInfo struct {
	name string
	text string
}

var catalogue = map[Error]codeInfo{
	EPERM:       {"EPERM", "operation not permitted"},
	ENOENT:      {"ENOENT", "no such file or directory"},
	ESRCH:       {"ESRCH", "no such process"},
	EINTR:       {"EINTR", "interrupted system call"},
	EIO:         {"EIO", "I/O error"},
	ENXIO:       {"ENXIO", "no such device or address"},
	E2BIG:       {"E2BIG", "argument list too long"},
	ENOEXEC:     {"ENOEXEC", "exec format error"},
	EBADF:       {"EBADF", "bad file number"},
	ECHILD:      {"ECHILD", "no child processes"},
	EAGAIN:      {"EAGAIN", "try again"},
	ENOMEM:      {"ENOMEM", "out of memory"},
	EACCES:      {"EACCES", "permission denied"},
	EFAULT:      {"EFAULT", "bad address"},
	ENOTBLK:     {"ENOTBLK", "block device required"},
	EBUSY:       {"EBUSY", "device or resource busy"},
	EEXIST:      {"EEXIST", "file exists"},
	EXDEV:       {"EXDEV", "cross-device link"},
	ENODEV:      {"ENODEV", "no such device"},
	ENOTDIR:     {"ENOTDIR", "not a directory"},
	EISDIR:      {"EISDIR", "is a directory"},
	EINVAL:      {"EINVAL", "invalid argument"},
	ENFILE:      {"ENFILE", "file table overflow"},
	EMFILE:      {"EMFILE", "too many open files"},
	ENOTTY:      {"ENOTTY", "not a typewriter"},
	ETXTBSY:     {"ETXTBSY", "text file busy"},
	EFBIG:       {"EFBIG", "file too large"},
	ENOSPC:      {"ENOSPC", "no space left on device"},
	ESPIPE:      {"ESPIPE", "illegal seek"},
	EROFS:       {"EROFS", "read-only file system"},
	EMLINK:      {"EMLINK", "too many links"},
	EPIPE:       {"EPIPE", "broken pipe"},
	EDOM:        {"EDOM", "math argument out of domain"},
	ERANGE:      {"ERANGE", "math result not representable"},
	ERESTARTSYS: {"ERESTARTSYS", "restart the system call"},
}

// Catalogue returns the named codes in ascending magnitude order. The slice
// is freshly allocated; callers may reorder it.
func Catalogue() []Error {
	out := make([]Error, 0, len(catalogue))
	for e := range catalogue {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}
