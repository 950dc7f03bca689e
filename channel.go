// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"errors"

	"github.com/ik5/foxaudio/native"
)

// Channel is one playback of a Sound. Channels belong to the engine: once
// a channel has played out its handle goes stale and IsPlaying reports
// false.
type Channel struct {
	m    *Manager
	h    native.Channel
	life lifetime
}

// gone reports whether err means the engine already dropped the channel.
func gone(err error) bool {
	return errors.Is(err, native.ErrInvalidHandle) || errors.Is(err, native.ErrChannelStolen)
}

func (c *Channel) applyDefaults(s *Sound) error {
	if err := c.SetLoops(s.Loops); err != nil {
		return err
	}
	if err := c.SetVolume(s.Volume); err != nil {
		return err
	}
	if err := c.SetPitch(s.Pitch); err != nil {
		return err
	}
	if err := c.SetLowPass(s.LowPass); err != nil {
		return err
	}
	if !s.Is3D {
		return nil
	}

	mode, err := c.Mode()
	if err != nil {
		return err
	}
	if err := c.SetMode(mode | native.Mode3D); err != nil {
		return err
	}
	if err := c.SetAttributes3D(s.Position3D, s.Velocity3D); err != nil {
		return err
	}

	return c.SetMinMaxDistance3D(s.MinDistance3D, s.MaxDistance3D)
}

// Native returns the engine handle of the channel.
func (c *Channel) Native() native.Channel { return c.h }

// IsPlaying reports false without an error for channels the engine has
// already finished or stolen.
func (c *Channel) IsPlaying() (bool, error) {
	playing, err := get(&c.life, c.m, "channel is playing", func() (bool, native.Result) {
		return c.m.engine.ChannelIsPlaying(c.h)
	})
	if gone(err) {
		return false, nil
	}

	return playing, err
}

func (c *Channel) Paused() (bool, error) {
	return get(&c.life, c.m, "channel paused", func() (bool, native.Result) {
		return c.m.engine.ChannelPaused(c.h)
	})
}

func (c *Channel) SetPaused(paused bool) error {
	return set(&c.life, c.m, "set channel paused", func() native.Result {
		return c.m.engine.ChannelSetPaused(c.h, paused)
	})
}

func (c *Channel) Pause() error  { return c.SetPaused(true) }
func (c *Channel) Resume() error { return c.SetPaused(false) }

func (c *Channel) Volume() (float32, error) {
	return get(&c.life, c.m, "channel volume", func() (float32, native.Result) {
		return c.m.engine.ChannelVolume(c.h)
	})
}

func (c *Channel) SetVolume(volume float32) error {
	return set(&c.life, c.m, "set channel volume", func() native.Result {
		return c.m.engine.ChannelSetVolume(c.h, volume)
	})
}

func (c *Channel) Pitch() (float32, error) {
	return get(&c.life, c.m, "channel pitch", func() (float32, native.Result) {
		return c.m.engine.ChannelPitch(c.h)
	})
}

func (c *Channel) SetPitch(pitch float32) error {
	return set(&c.life, c.m, "set channel pitch", func() native.Result {
		return c.m.engine.ChannelSetPitch(c.h, pitch)
	})
}

// LowPass is the low pass gain, 1 meaning unfiltered.
func (c *Channel) LowPass() (float32, error) {
	return get(&c.life, c.m, "channel low pass gain", func() (float32, native.Result) {
		return c.m.engine.ChannelLowPassGain(c.h)
	})
}

func (c *Channel) SetLowPass(gain float32) error {
	return set(&c.life, c.m, "set channel low pass gain", func() native.Result {
		return c.m.engine.ChannelSetLowPassGain(c.h, gain)
	})
}

func (c *Channel) Mode() (native.Mode, error) {
	return get(&c.life, c.m, "channel mode", func() (native.Mode, native.Result) {
		return c.m.engine.ChannelMode(c.h)
	})
}

func (c *Channel) SetMode(mode native.Mode) error {
	return set(&c.life, c.m, "set channel mode", func() native.Result {
		return c.m.engine.ChannelSetMode(c.h, mode)
	})
}

// Is3D reports whether the channel is positioned in 3D.
func (c *Channel) Is3D() (bool, error) {
	mode, err := c.Mode()
	return mode.Has(native.Mode3D), err
}

// SetIs3D switches the channel between 3D and 2D positioning.
func (c *Channel) SetIs3D(is3D bool) error {
	mode, err := c.Mode()
	if err != nil {
		return err
	}

	if is3D {
		mode = mode&^native.Mode2D | native.Mode3D
	} else {
		mode = mode&^native.Mode3D | native.Mode2D
	}

	return c.SetMode(mode)
}

func (c *Channel) Loops() (int, error) {
	return get(&c.life, c.m, "channel loop count", func() (int, native.Result) {
		return c.m.engine.ChannelLoopCount(c.h)
	})
}

// SetLoops sets the loop count and switches looping off for 0 and on
// otherwise.
func (c *Channel) SetLoops(loops int) error {
	mode, err := c.Mode()
	if err != nil {
		return err
	}

	loop := native.ModeLoopNormal
	if loops == 0 {
		loop = native.ModeLoopOff
	}
	if err := c.SetMode(mode.WithLoop(loop)); err != nil {
		return err
	}

	return set(&c.life, c.m, "set channel loop count", func() native.Result {
		return c.m.engine.ChannelSetLoopCount(c.h, loops)
	})
}

// Looping reports whether the channel loops endlessly.
func (c *Channel) Looping() (bool, error) {
	loops, err := c.Loops()
	return loops == -1, err
}

func (c *Channel) SetLooping(looping bool) error {
	if looping {
		return c.SetLoops(-1)
	}

	return c.SetLoops(0)
}

func (c *Channel) Position(unit native.TimeUnit) (uint32, error) {
	return get(&c.life, c.m, "channel position", func() (uint32, native.Result) {
		return c.m.engine.ChannelPosition(c.h, unit)
	})
}

func (c *Channel) SetPosition(pos uint32, unit native.TimeUnit) error {
	return set(&c.life, c.m, "set channel position", func() native.Result {
		return c.m.engine.ChannelSetPosition(c.h, pos, unit)
	})
}

// TrackPosition is the play position in milliseconds.
func (c *Channel) TrackPosition() (uint32, error) {
	return c.Position(native.TimeUnitMS)
}

func (c *Channel) SetTrackPosition(ms uint32) error {
	return c.SetPosition(ms, native.TimeUnitMS)
}

func (c *Channel) Attributes3D() (pos, vel native.Vector, err error) {
	if err := c.life.usable(c.m); err != nil {
		return pos, vel, err
	}

	pos, vel, res := c.m.engine.Channel3DAttributes(c.h)
	return pos, vel, c.m.check("channel 3d attributes", res)
}

func (c *Channel) SetAttributes3D(pos, vel native.Vector) error {
	return set(&c.life, c.m, "set channel 3d attributes", func() native.Result {
		return c.m.engine.ChannelSet3DAttributes(c.h, pos, vel)
	})
}

func (c *Channel) MinMaxDistance3D() (minDistance, maxDistance float32, err error) {
	if err := c.life.usable(c.m); err != nil {
		return 0, 0, err
	}

	minDistance, maxDistance, res := c.m.engine.Channel3DMinMaxDistance(c.h)
	return minDistance, maxDistance, c.m.check("channel 3d min max distance", res)
}

func (c *Channel) SetMinMaxDistance3D(minDistance, maxDistance float32) error {
	return set(&c.life, c.m, "set channel 3d min max distance", func() native.Result {
		return c.m.engine.ChannelSet3DMinMaxDistance(c.h, minDistance, maxDistance)
	})
}

// Sound resolves the sound the channel is playing. Channels of sounds not
// created by this Manager, or already disposed, report false.
func (c *Channel) Sound() (*Sound, bool) {
	if c.life.usable(c.m) != nil {
		return nil, false
	}

	snd, res := c.m.engine.ChannelCurrentSound(c.h)
	if res != native.OK {
		return nil, false
	}
	ud, res := c.m.engine.SoundUserData(snd)
	if res != native.OK {
		return nil, false
	}

	return c.m.sounds.ResolveUserData(ud)
}

// Stop stops playback. Stopping a channel that already finished is not an
// error.
func (c *Channel) Stop() error {
	err := set(&c.life, c.m, "stop channel", func() native.Result {
		return c.m.engine.ChannelStop(c.h)
	})
	if gone(err) {
		return nil
	}

	return err
}

// Dispose stops the channel once. The wrapper is unusable afterwards.
// After Unload the engine already dropped the channel and Dispose only
// marks the wrapper.
func (c *Channel) Dispose() error {
	return c.life.dispose(func() error {
		if c.m.ready() != nil {
			return nil
		}
		err := c.m.check("stop channel", c.m.engine.ChannelStop(c.h))
		if gone(err) {
			return nil
		}
		return err
	})
}
