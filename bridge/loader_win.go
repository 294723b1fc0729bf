//go:build windows
// +build windows

package bridge

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/isesword/errno-go-bridge/errno"
)

// Bridge holds the host errno helper functions bound from the DLL.
type Bridge struct {
	lib        *syscall.DLL
	abiVersion *syscall.Proc
	maxErrno   *syscall.Proc
	isErr      *syscall.Proc
	ptrErr     *syscall.Proc
	errPtr     *syscall.Proc
}

// LoadBridge loads the helper DLL and binds its symbols. An empty path falls
// back to the ERRNO_BRIDGE_LIB environment variable, then to the
// executable's directory.
func LoadBridge(libPath string) (*Bridge, error) {
	libPath, err := resolveLibPath(libPath)
	if err != nil {
		return nil, err
	}

	lib, err := syscall.LoadDLL(libPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load library %s: %w", libPath, err)
	}

	b := &Bridge{lib: lib}

	if b.abiVersion, err = lib.FindProc("bridge_abi_version"); err != nil {
		return nil, fmt.Errorf("failed to find bridge_abi_version: %w", err)
	}
	if b.maxErrno, err = lib.FindProc("bridge_max_errno"); err != nil {
		return nil, fmt.Errorf("failed to find bridge_max_errno: %w", err)
	}
	if b.isErr, err = lib.FindProc("bridge_is_err"); err != nil {
		return nil, fmt.Errorf("failed to find bridge_is_err: %w", err)
	}
	if b.ptrErr, err = lib.FindProc("bridge_ptr_err"); err != nil {
		return nil, fmt.Errorf("failed to find bridge_ptr_err: %w", err)
	}
	if b.errPtr, err = lib.FindProc("bridge_err_ptr"); err != nil {
		return nil, fmt.Errorf("failed to find bridge_err_ptr: %w", err)
	}

	if err := b.verify(); err != nil {
		return nil, err
	}
	return b, nil
}

// AbiVersion returns the helper library's ABI version.
func (b *Bridge) AbiVersion() uint32 {
	ret, _, _ := b.abiVersion.Call()
	return uint32(ret)
}

// MaxErrno returns the host's maximum declared error magnitude.
func (b *Bridge) MaxErrno() uint32 {
	ret, _, _ := b.maxErrno.Call()
	return uint32(ret)
}

// IsErr reports whether p lies in the host's reserved error-pointer range.
// The host inspects the bit pattern only; p is never dereferenced.
func (b *Bridge) IsErr(p unsafe.Pointer) bool {
	ret, _, _ := b.isErr.Call(uintptr(p))
	return ret != 0
}

// PtrErr extracts the errno encoded in p. Only meaningful when IsErr
// reported true, in which case the value is negative and no smaller than
// -MaxErrno.
func (b *Bridge) PtrErr(p unsafe.Pointer) int64 {
	ret, _, _ := b.ptrErr.Call(uintptr(p))
	return int64(ret)
}

// ErrPtr encodes e into the host's error-pointer convention. The inverse of
// PtrErr; useful for handing failures back through pointer-returning host
// callbacks and for exercising the decoder against a real host build.
func (b *Bridge) ErrPtr(e errno.Error) unsafe.Pointer {
	ret, _, _ := b.errPtr.Call(uintptr(int64(e.Errno())))
	return unsafe.Pointer(ret)
}
