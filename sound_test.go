// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"bytes"
	"testing"
	"time"

	"github.com/ik5/foxaudio/internal/nativetest"
	"github.com/ik5/foxaudio/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaySampleEndToEnd(t *testing.T) {
	t.Parallel()

	counting, _, _ := nativetest.Engine()
	m := New(counting)
	require.NoError(t, m.Init(DefaultConfig()))

	snd, err := m.LoadSoundFromBytes(nativetest.Tone(t, 500))
	require.NoError(t, err)
	assert.False(t, snd.Streamed())

	ch, err := snd.Play(false)
	require.NoError(t, err)

	playing, err := ch.IsPlaying()
	require.NoError(t, err)
	assert.True(t, playing)

	vol, err := ch.Volume()
	require.NoError(t, err)
	assert.Equal(t, float32(1), vol)

	require.NoError(t, ch.Dispose())
	require.NoError(t, snd.Dispose())
	require.NoError(t, m.Unload())

	assert.ErrorIs(t, m.Update(), ErrNotInitialized)
}

func TestSoundDisposeOnce(t *testing.T) {
	t.Parallel()

	m, counting, _ := newManager(t, ModeCore)

	snd, err := m.LoadSoundFromBytes(nativetest.Tone(t, 50))
	require.NoError(t, err)
	id := snd.Handle()

	require.NoError(t, snd.Dispose())
	require.NoError(t, snd.Dispose())
	assert.Equal(t, 1, counting.Calls("SoundRelease"))

	_, ok := m.sounds.Resolve(id)
	assert.False(t, ok)

	_, err = snd.Play(false)
	assert.ErrorIs(t, err, ErrDisposed)
	_, err = snd.Length(native.TimeUnitMS)
	assert.ErrorIs(t, err, ErrDisposed)
}

func TestStreamedSoundPinsData(t *testing.T) {
	t.Parallel()

	m, _, _ := newManager(t, ModeCore)

	snd, err := m.LoadStreamedSoundFromReader(bytes.NewReader(nativetest.Tone(t, 250)))
	require.NoError(t, err)
	require.True(t, snd.Streamed())
	assert.True(t, snd.buf.Pinned())

	mode, err := snd.Mode()
	require.NoError(t, err)
	assert.True(t, mode.Has(native.ModeCreateStream))

	length, err := snd.Length(native.TimeUnitMS)
	require.NoError(t, err)
	assert.Equal(t, uint32(250), length)

	require.NoError(t, snd.Dispose())
	assert.False(t, snd.buf.Pinned())
}

func TestLoadSoundErrors(t *testing.T) {
	t.Parallel()

	m, _, _ := newManager(t, ModeCore)

	_, err := m.LoadSoundFromBytes([]byte("definitely not audio"))
	assert.ErrorIs(t, err, native.ErrFormat)

	_, err = m.LoadSound("missing.wav")
	assert.Error(t, err)
}

func TestChannelDefaults(t *testing.T) {
	t.Parallel()

	m, _, _ := newManager(t, ModeCore)

	snd, err := m.LoadSoundFromBytes(nativetest.Tone(t, 100))
	require.NoError(t, err)
	snd.Volume = 0.5
	snd.Pitch = 2
	snd.LowPass = 0.25
	snd.Loops = -1
	snd.Is3D = true
	snd.Position3D = native.Vector{X: 1, Y: 2, Z: 3}
	snd.MinDistance3D = 2
	snd.MaxDistance3D = 50

	ch, err := snd.Play(true)
	require.NoError(t, err)

	vol, err := ch.Volume()
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), vol)

	pitch, err := ch.Pitch()
	require.NoError(t, err)
	assert.Equal(t, float32(2), pitch)

	lp, err := ch.LowPass()
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), lp)

	looping, err := ch.Looping()
	require.NoError(t, err)
	assert.True(t, looping)

	mode, err := ch.Mode()
	require.NoError(t, err)
	assert.True(t, mode.Has(native.Mode3D))
	assert.True(t, mode.Has(native.ModeLoopNormal))

	pos, _, err := ch.Attributes3D()
	require.NoError(t, err)
	assert.Equal(t, snd.Position3D, pos)

	minD, maxD, err := ch.MinMaxDistance3D()
	require.NoError(t, err)
	assert.Equal(t, float32(2), minD)
	assert.Equal(t, float32(50), maxD)

	paused, err := ch.Paused()
	require.NoError(t, err)
	assert.True(t, paused)

	require.NoError(t, ch.Resume())
	paused, err = ch.Paused()
	require.NoError(t, err)
	assert.False(t, paused)

	require.NoError(t, ch.SetLoops(0))
	mode, err = ch.Mode()
	require.NoError(t, err)
	assert.True(t, mode.Has(native.ModeLoopOff))
}

func TestChannelPlaysOut(t *testing.T) {
	t.Parallel()

	m, counting, clock := newManager(t, ModeCore)

	snd, err := m.LoadSoundFromBytes(nativetest.Tone(t, 100))
	require.NoError(t, err)

	ch, err := snd.Play(false)
	require.NoError(t, err)

	clock.Advance(40 * time.Millisecond)
	require.NoError(t, m.Update())

	pos, err := ch.TrackPosition()
	require.NoError(t, err)
	assert.InDelta(t, 40, pos, 1)

	clock.Advance(100 * time.Millisecond)
	require.NoError(t, m.Update())

	playing, err := ch.IsPlaying()
	require.NoError(t, err)
	assert.False(t, playing)

	require.NoError(t, ch.Stop())
	require.NoError(t, ch.Dispose())
	assert.Equal(t, 2, counting.Calls("ChannelStop"))
}

func TestChannelSound(t *testing.T) {
	t.Parallel()

	m, _, _ := newManager(t, ModeCore)

	snd, err := m.LoadSoundFromBytes(nativetest.Tone(t, 100))
	require.NoError(t, err)

	ch, err := snd.Play(true)
	require.NoError(t, err)

	got, ok := ch.Sound()
	require.True(t, ok)
	assert.Same(t, snd, got)

	require.NoError(t, ch.Dispose())
	_, ok = ch.Sound()
	assert.False(t, ok)

	_, err = ch.Volume()
	assert.ErrorIs(t, err, ErrDisposed)
}

func TestChannelGroups(t *testing.T) {
	t.Parallel()

	m, counting, _ := newManager(t, ModeCore)

	master, err := m.MasterChannelGroup()
	require.NoError(t, err)
	require.NoError(t, master.Dispose())
	assert.Zero(t, counting.Calls("ChannelGroupRelease"))

	music, err := m.CreateChannelGroup("music")
	require.NoError(t, err)
	require.NoError(t, music.SetVolume(0.5))

	vol, err := music.Volume()
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), vol)

	snd, err := m.LoadSoundFromBytes(nativetest.Tone(t, 100))
	require.NoError(t, err)
	snd.ChannelGroup = music

	_, err = snd.Play(false)
	require.NoError(t, err)

	n, err := music.NumChannels()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	playing, err := music.IsPlaying()
	require.NoError(t, err)
	assert.True(t, playing)

	require.NoError(t, music.SetMute(true))
	mute, err := music.Mute()
	require.NoError(t, err)
	assert.True(t, mute)

	require.NoError(t, music.Stop())
	n, err = music.NumChannels()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, music.Dispose())
	require.NoError(t, music.Dispose())
	assert.Equal(t, 1, counting.Calls("ChannelGroupRelease"))

	_, err = snd.Play(false)
	assert.ErrorIs(t, err, ErrDisposed)

	_, err = snd.PlayIn(nil, false)
	assert.NoError(t, err)
}

func TestChannelIs3D(t *testing.T) {
	t.Parallel()

	m, _, _ := newManager(t, ModeCore)

	snd, err := m.LoadSoundFromBytes(nativetest.Tone(t, 100))
	require.NoError(t, err)
	ch, err := snd.Play(true)
	require.NoError(t, err)

	is3D, err := ch.Is3D()
	require.NoError(t, err)
	assert.False(t, is3D)

	require.NoError(t, ch.SetIs3D(true))
	is3D, err = ch.Is3D()
	require.NoError(t, err)
	assert.True(t, is3D)

	mode, err := ch.Mode()
	require.NoError(t, err)
	assert.False(t, mode.Has(native.Mode2D))

	require.NoError(t, ch.SetIs3D(false))
	mode, err = ch.Mode()
	require.NoError(t, err)
	assert.True(t, mode.Has(native.Mode2D))
	assert.False(t, mode.Has(native.Mode3D))
}
