// SPDX-License-Identifier: EPL-2.0

//go:build darwin || freebsd || linux || windows

package fmodlib

import (
	"testing"
	"unsafe"

	"github.com/ik5/foxaudio/loader"
	"github.com/ik5/foxaudio/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLibrary struct {
	path   string
	closed int
}

func (l *fakeLibrary) Symbol(string) (uintptr, error) { return 0, loader.ErrSymbolNotFound }
func (l *fakeLibrary) Close() error                   { l.closed++; return nil }
func (l *fakeLibrary) Path() string                   { return l.path }

func TestOpenMissingSymbolClosesLibraries(t *testing.T) {
	var opened []*fakeLibrary
	r := &loader.Resolver{
		Strategy: loader.Managed{},
		Opener: func(path string) (loader.Library, error) {
			lib := &fakeLibrary{path: path}
			opened = append(opened, lib)
			return lib, nil
		},
	}

	for _, mode := range []loader.Mode{loader.ModeCore, loader.ModeCoreAndStudio} {
		opened = nil

		e, err := Open(r, mode)
		require.ErrorIs(t, err, loader.ErrSymbolNotFound, mode.String())
		assert.Nil(t, e)

		require.NotEmpty(t, opened)
		for _, lib := range opened {
			assert.Equal(t, 1, lib.closed, lib.path)
		}
	}
}

func TestStubbedStudio(t *testing.T) {
	var e Engine
	stub(e.studio.bindings(), native.ErrStudioUninitialized)

	_, res := e.StudioSystemCreate()
	assert.Equal(t, native.ErrStudioUninitialized, res)

	_, res = e.BankPath(1)
	assert.Equal(t, native.ErrStudioUninitialized, res)

	list, res := e.BankEventList(1)
	assert.Equal(t, native.ErrStudioUninitialized, res)
	assert.Nil(t, list)

	_, _, res = e.BusVolume(1)
	assert.Equal(t, native.ErrStudioUninitialized, res)

	assert.Equal(t, native.ErrStudioUninitialized, e.EventInstanceStart(1))
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "", goString(nil))

	buf := []byte("event:/ui/click\x00junk")
	assert.Equal(t, "event:/ui/click", goString(&buf[0]))
}

func TestReadPath(t *testing.T) {
	const path = "bus:/sfx"

	calls := 0
	got, res := readPath(func(p *byte, size int32, retrieved *int32) native.Result {
		calls++
		*retrieved = int32(len(path) + 1)
		if p == nil || size < *retrieved {
			return native.ErrTruncated
		}

		dst := unsafe.Slice(p, size)
		copy(dst, path)
		dst[len(path)] = 0

		return native.OK
	})

	require.Equal(t, native.OK, res)
	assert.Equal(t, path, got)
	assert.Equal(t, 2, calls)

	_, res = readPath(func(*byte, int32, *int32) native.Result { return native.ErrInvalidHandle })
	assert.Equal(t, native.ErrInvalidHandle, res)
}

func TestReadList(t *testing.T) {
	src := []native.EventDescription{3, 5, 8}

	got, res := readList(
		func(n *int32) native.Result { *n = int32(len(src)); return native.OK },
		func(first *native.EventDescription, capacity int32, n *int32) native.Result {
			*n = int32(copy(unsafe.Slice(first, capacity), src))
			return native.OK
		},
	)
	require.Equal(t, native.OK, res)
	assert.Equal(t, src, got)

	got, res = readList(
		func(n *int32) native.Result { *n = 0; return native.OK },
		func(*native.EventDescription, int32, *int32) native.Result { return native.ErrInternal },
	)
	assert.Equal(t, native.OK, res)
	assert.Empty(t, got)
}

func TestCallbackDispatch(t *testing.T) {
	const inst = native.EventInstance(42)

	var seen []native.EventCallbackType
	setCallback(inst, func(typ native.EventCallbackType, i native.EventInstance, _ uintptr) native.Result {
		assert.Equal(t, inst, i)
		seen = append(seen, typ)
		return native.OK
	})

	dispatch(uintptr(native.EventCallbackStarted), uintptr(inst), 0)
	dispatch(uintptr(native.EventCallbackDestroyed), uintptr(inst), 0)
	dispatch(uintptr(native.EventCallbackStarted), uintptr(inst), 0)

	assert.Equal(t, []native.EventCallbackType{
		native.EventCallbackStarted,
		native.EventCallbackDestroyed,
	}, seen)
}

func TestCbool(t *testing.T) {
	assert.Equal(t, int32(1), cbool(true))
	assert.Equal(t, int32(0), cbool(false))
}

func TestBufferLengthLimits(t *testing.T) {
	assert.True(t, fits(1, maxSoundLength))
	assert.True(t, fits(maxSoundLength, maxSoundLength))
	assert.False(t, fits(maxSoundLength+1, maxSoundLength))
	assert.False(t, fits(0, maxSoundLength))

	assert.True(t, fits(maxBankLength, maxBankLength))
	assert.False(t, fits(maxBankLength+1, maxBankLength))
}

func TestEmptyBuffersRejected(t *testing.T) {
	var e Engine

	_, res := e.SystemCreateSound(1, nil, native.ModeOpenMemory)
	assert.Equal(t, native.ErrInvalidParam, res)

	_, res = e.StudioSystemLoadBankMemory(1, nil, native.LoadMemory, native.LoadBankNormal)
	assert.Equal(t, native.ErrInvalidParam, res)
}
