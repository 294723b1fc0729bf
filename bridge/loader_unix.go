//go:build !windows
// +build !windows

package bridge

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/isesword/errno-go-bridge/errno"
)

// Bridge holds the host errno helper functions bound from the shared library.
type Bridge struct {
	lib        uintptr
	abiVersion func() uint32
	maxErrno   func() uint32
	isErr      func(uintptr) bool
	ptrErr     func(uintptr) int64
	errPtr     func(int64) uintptr
}

// LoadBridge loads the helper library and binds its symbols. An empty path
// falls back to the ERRNO_BRIDGE_LIB environment variable, then to the
// executable's directory.
func LoadBridge(libPath string) (*Bridge, error) {
	libPath, err := resolveLibPath(libPath)
	if err != nil {
		return nil, err
	}

	lib, err := purego.Dlopen(libPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("failed to load library %s: %w", libPath, err)
	}

	b := &Bridge{lib: lib}

	purego.RegisterLibFunc(&b.abiVersion, lib, "bridge_abi_version")
	purego.RegisterLibFunc(&b.maxErrno, lib, "bridge_max_errno")
	purego.RegisterLibFunc(&b.isErr, lib, "bridge_is_err")
	purego.RegisterLibFunc(&b.ptrErr, lib, "bridge_ptr_err")
	purego.RegisterLibFunc(&b.errPtr, lib, "bridge_err_ptr")

	if err := b.verify(); err != nil {
		return nil, err
	}
	return b, nil
}

// AbiVersion returns the helper library's ABI version.
func (b *Bridge) AbiVersion() uint32 {
	return b.abiVersion()
}

// MaxErrno returns the host's maximum declared error magnitude.
func (b *Bridge) MaxErrno() uint32 {
	return b.maxErrno()
}

// IsErr reports whether p lies in the host's reserved error-pointer range.
// The host inspects the bit pattern only; p is never dereferenced.
func (b *Bridge) IsErr(p unsafe.Pointer) bool {
	return b.isErr(uintptr(p))
}

// PtrErr extracts the errno encoded in p. Only meaningful when IsErr
// reported true, in which case the value is negative and no smaller than
// -MaxErrno.
func (b *Bridge) PtrErr(p unsafe.Pointer) int64 {
	return b.ptrErr(uintptr(p))
}

// ErrPtr encodes e into the host's error-pointer convention. The inverse of
// PtrErr; useful for handing failures back through pointer-returning host
// callbacks and for exercising the decoder against a real host build.
func (b *Bridge) ErrPtr(e errno.Error) unsafe.Pointer {
	return unsafe.Pointer(b.errPtr(int64(e.Errno())))
}
