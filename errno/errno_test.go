package errno

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueValues(t *testing.T) {
	tests := []struct {
		code Error
		raw  int32
		name string
	}{
		{EPERM, -1, "EPERM"},
		{ENOENT, -2, "ENOENT"},
		{ESRCH, -3, "ESRCH"},
		{EINTR, -4, "EINTR"},
		{EAGAIN, -11, "EAGAIN"},
		{ENOMEM, -12, "ENOMEM"},
		{EFAULT, -14, "EFAULT"},
		{EBUSY, -16, "EBUSY"},
		{EINVAL, -22, "EINVAL"},
		{ESPIPE, -29, "ESPIPE"},
		{ERESTARTSYS, -512, "ERESTARTSYS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.raw, tt.code.Errno())
			assert.Equal(t, tt.name, tt.code.Name())
		})
	}
}

func TestRoundTripIdentity(t *testing.T) {
	for _, code := range Catalogue() {
		got := FromErrno(code.Errno())
		require.Equal(t, code, got, "%s does not survive the raw round trip", code.Name())
		require.Equal(t, code.Errno(), got.Errno())
	}
}

func TestNarrowingSafety(t *testing.T) {
	// Every magnitude up to and including MaxErrno must survive the int16
	// round trip the boundary adapter performs.
	for m := int32(1); m <= MaxErrno; m++ {
		narrowed := int16(-m)
		require.Equal(t, -m, int32(narrowed), "magnitude %d truncated", m)
		require.Negative(t, narrowed)
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "invalid argument", EINVAL.Error())
	assert.Equal(t, "out of memory", ENOMEM.Error())

	unknown := FromErrno(-4000)
	assert.Equal(t, "errno -4000", unknown.Error())
	assert.Empty(t, unknown.Name())
}

func TestErrorIsError(t *testing.T) {
	var err error = EINVAL
	assert.EqualError(t, err, "invalid argument")

	wrapped := fmt.Errorf("ioctl failed: %w", EBUSY)
	assert.ErrorIs(t, wrapped, EBUSY)
}

func TestCatalogueOrder(t *testing.T) {
	codes := Catalogue()
	require.Len(t, codes, 35)

	assert.Equal(t, EPERM, codes[0])
	assert.Equal(t, ERESTARTSYS, codes[len(codes)-1])
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i], codes[i-1], "catalogue not in ascending magnitude order")
	}
}
