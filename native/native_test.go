// SPDX-License-Identifier: EPL-2.0

package native

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Err(t *testing.T) {
	t.Parallel()

	assert.NoError(t, OK.Err())

	err := ErrInvalidHandle.Err()
	require.Error(t, err)
	assert.Equal(t, "native: ERR_INVALID_HANDLE", err.Error())

	wrapped := fmt.Errorf("channel volume: %w", err)
	var res Result
	require.True(t, errors.As(wrapped, &res))
	assert.Equal(t, ErrInvalidHandle, res)
	assert.ErrorIs(t, wrapped, ErrInvalidHandle)
}

func TestResult_UnknownName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "RESULT_999", Result(999).Name())
}

func TestMode_WithLoop(t *testing.T) {
	t.Parallel()

	m := Mode3D | ModeLoopNormal | ModeCreateSample
	m = m.WithLoop(ModeLoopOff)

	assert.True(t, m.Has(ModeLoopOff))
	assert.False(t, m.Has(ModeLoopNormal))
	assert.True(t, m.Has(Mode3D|ModeCreateSample))
}

func TestGUID_UUIDRoundTrip(t *testing.T) {
	t.Parallel()

	g, err := ParseGUID("{2a3e48e6-94fc-4363-9468-33d2dd4d7b00}")
	require.NoError(t, err)

	assert.Equal(t, uint32(0x2a3e48e6), g.Data1)
	assert.Equal(t, uint16(0x94fc), g.Data2)
	assert.Equal(t, uint16(0x4363), g.Data3)
	assert.Equal(t, [8]byte{0x94, 0x68, 0x33, 0xd2, 0xdd, 0x4d, 0x7b, 0x00}, g.Data4)
	assert.Equal(t, "{2a3e48e6-94fc-4363-9468-33d2dd4d7b00}", g.String())

	id := uuid.New()
	assert.Equal(t, id, GUIDFromUUID(id).UUID())
}

func TestParseGUID_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseGUID("not-a-guid")
	assert.Error(t, err)
}

func TestDefaultAttributes3D(t *testing.T) {
	t.Parallel()

	a := DefaultAttributes3D()
	assert.Equal(t, VectorZero, a.Position)
	assert.Equal(t, VectorUnitY, a.Forward)
	assert.Equal(t, VectorUnitZ, a.Up)
}
