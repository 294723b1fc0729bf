package errno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultOk(t *testing.T) {
	r := Ok(42)

	assert.False(t, r.IsErr())
	assert.Equal(t, 42, r.Value())
	assert.NoError(t, r.Err())

	v, err := r.Unpack()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestResultErr(t *testing.T) {
	r := Err[int](EAGAIN)

	assert.True(t, r.IsErr())
	assert.Zero(t, r.Value())
	assert.ErrorIs(t, r.Err(), EAGAIN)

	v, err := r.Unpack()
	assert.Zero(t, v)
	assert.Equal(t, EAGAIN, err)
}

func TestResultUnit(t *testing.T) {
	r := Ok(Unit{})
	assert.False(t, r.IsErr())
	assert.NoError(t, r.Err())
}
