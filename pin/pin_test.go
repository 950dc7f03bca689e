// SPDX-License-Identifier: EPL-2.0

package pin

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_AddressStableUnderGC(t *testing.T) {
	t.Parallel()

	buf := New([]byte("streamed audio data"))
	defer buf.Release()

	addr := buf.Addr()
	require.NotZero(t, addr)

	for range 5 {
		// churn the heap so a moving collector would have reason to relocate
		garbage := make([][]byte, 0, 256)
		for range 256 {
			garbage = append(garbage, make([]byte, 4096))
		}
		_ = garbage
		runtime.GC()

		assert.Equal(t, addr, buf.Addr())
	}

	assert.Equal(t, "streamed audio data", string(buf.Bytes()))
}

func TestBuffer_ReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	buf := New(make([]byte, 16))
	require.True(t, buf.Pinned())
	assert.Equal(t, 16, buf.Len())

	buf.Release()
	assert.False(t, buf.Pinned())
	assert.Nil(t, buf.Bytes())
	assert.Zero(t, buf.Addr())

	assert.NotPanics(t, buf.Release)
}

func TestBuffer_Empty(t *testing.T) {
	t.Parallel()

	buf := New(nil)
	assert.False(t, buf.Pinned())
	assert.Zero(t, buf.Addr())
	assert.NotPanics(t, buf.Release)
}
