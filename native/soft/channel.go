// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"time"

	"github.com/ik5/foxaudio/native"
)

const (
	defaultMinDistance = 1
	defaultMaxDistance = 10000
)

type channel struct {
	sys   native.System
	sound native.Sound
	group native.ChannelGroup

	paused  bool
	volume  float32
	pitch   float32
	lowPass float32
	mode    native.Mode
	loops   int

	// play cursor in PCM frames
	cursor float64

	pos, vel         native.Vector
	minDist, maxDist float32
}

func (e *Engine) SystemPlaySound(sys native.System, snd native.Sound, grp native.ChannelGroup, paused bool) (native.Channel, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, res := e.initializedSystem(sys)
	if res != native.OK {
		return 0, res
	}

	so, ok := e.sounds[snd]
	if !ok || so.sys != sys {
		return 0, native.ErrInvalidHandle
	}

	if grp == 0 {
		grp = s.master
	}
	if g, ok := e.groups[grp]; !ok || g.sys != sys {
		return 0, native.ErrInvalidHandle
	}

	playing := 0
	for _, c := range e.channels {
		if c.sys == sys {
			playing++
		}
	}
	if playing >= s.maxChannels {
		return 0, native.ErrChannelAlloc
	}

	h := native.Channel(e.alloc())
	e.channels[h] = &channel{
		sys:     sys,
		sound:   snd,
		group:   grp,
		paused:  paused,
		volume:  1,
		pitch:   1,
		lowPass: 1,
		mode:    so.mode,
		loops:   so.loops,
		minDist: defaultMinDistance,
		maxDist: defaultMaxDistance,
	}

	return h, native.OK
}

// advanceChannel moves the cursor of c by elapsed wall time scaled by the
// effective pitch. It reports false once the channel has played out.
// Caller holds mu.
func (e *Engine) advanceChannel(c *channel, elapsed time.Duration) bool {
	if c.paused || e.groupPaused(c.group) {
		return true
	}

	snd, ok := e.sounds[c.sound]
	if !ok {
		return false
	}

	pitch := float64(c.pitch) * e.groupPitch(c.group)
	c.cursor += elapsed.Seconds() * float64(snd.rate) * pitch

	if snd.frames < 0 {
		return true
	}

	length := float64(snd.frames)
	if length <= 0 {
		return false
	}

	looping := c.mode.Has(native.ModeLoopNormal) || c.mode.Has(native.ModeLoopBidi)
	for c.cursor >= length {
		if !looping || c.loops == 0 {
			return false
		}
		c.cursor -= length
		if c.loops > 0 {
			c.loops--
		}
	}

	return true
}

// IsPlaying reports false with ErrInvalidHandle for channels that have
// played out or were stopped, as the real engine does.
func (e *Engine) ChannelIsPlaying(ch native.Channel) (bool, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.channels[ch]; !ok {
		return false, native.ErrInvalidHandle
	}

	return true, native.OK
}

func (e *Engine) ChannelStop(ch native.Channel) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.channels[ch]; !ok {
		return native.ErrInvalidHandle
	}

	delete(e.channels, ch)
	return native.OK
}

// withChannel runs fn on the channel under the lock.
func (e *Engine) withChannel(ch native.Channel, fn func(c *channel) native.Result) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.channels[ch]
	if !ok {
		return native.ErrInvalidHandle
	}

	return fn(c)
}

func (e *Engine) setChannelFloat(ch native.Channel, v float32, dst func(c *channel) *float32) native.Result {
	if !validFloat(v) {
		return native.ErrInvalidFloat
	}

	return e.withChannel(ch, func(c *channel) native.Result {
		*dst(c) = v
		return native.OK
	})
}

func (e *Engine) channelFloat(ch native.Channel, src func(c *channel) float32) (float32, native.Result) {
	var v float32
	res := e.withChannel(ch, func(c *channel) native.Result {
		v = src(c)
		return native.OK
	})

	return v, res
}

func (e *Engine) ChannelSetPaused(ch native.Channel, paused bool) native.Result {
	return e.withChannel(ch, func(c *channel) native.Result {
		c.paused = paused
		return native.OK
	})
}

func (e *Engine) ChannelPaused(ch native.Channel) (bool, native.Result) {
	var paused bool
	res := e.withChannel(ch, func(c *channel) native.Result {
		paused = c.paused
		return native.OK
	})

	return paused, res
}

func (e *Engine) ChannelSetVolume(ch native.Channel, volume float32) native.Result {
	return e.setChannelFloat(ch, volume, func(c *channel) *float32 { return &c.volume })
}

func (e *Engine) ChannelVolume(ch native.Channel) (float32, native.Result) {
	return e.channelFloat(ch, func(c *channel) float32 { return c.volume })
}

func (e *Engine) ChannelSetPitch(ch native.Channel, pitch float32) native.Result {
	return e.setChannelFloat(ch, pitch, func(c *channel) *float32 { return &c.pitch })
}

func (e *Engine) ChannelPitch(ch native.Channel) (float32, native.Result) {
	return e.channelFloat(ch, func(c *channel) float32 { return c.pitch })
}

func (e *Engine) ChannelSetLowPassGain(ch native.Channel, gain float32) native.Result {
	if gain < 0 || gain > 1 {
		return native.ErrInvalidParam
	}

	return e.setChannelFloat(ch, gain, func(c *channel) *float32 { return &c.lowPass })
}

func (e *Engine) ChannelLowPassGain(ch native.Channel) (float32, native.Result) {
	return e.channelFloat(ch, func(c *channel) float32 { return c.lowPass })
}

func (e *Engine) ChannelSetMode(ch native.Channel, mode native.Mode) native.Result {
	return e.withChannel(ch, func(c *channel) native.Result {
		c.mode = mode
		return native.OK
	})
}

func (e *Engine) ChannelMode(ch native.Channel) (native.Mode, native.Result) {
	var mode native.Mode
	res := e.withChannel(ch, func(c *channel) native.Result {
		mode = c.mode
		return native.OK
	})

	return mode, res
}

func (e *Engine) ChannelSetLoopCount(ch native.Channel, loops int) native.Result {
	if loops < -1 {
		return native.ErrInvalidParam
	}

	return e.withChannel(ch, func(c *channel) native.Result {
		c.loops = loops
		return native.OK
	})
}

func (e *Engine) ChannelLoopCount(ch native.Channel) (int, native.Result) {
	var loops int
	res := e.withChannel(ch, func(c *channel) native.Result {
		loops = c.loops
		return native.OK
	})

	return loops, res
}

func (e *Engine) ChannelSetPosition(ch native.Channel, pos uint32, unit native.TimeUnit) native.Result {
	return e.withChannel(ch, func(c *channel) native.Result {
		snd, ok := e.sounds[c.sound]
		if !ok {
			return native.ErrInvalidHandle
		}

		frames, res := snd.toFrames(pos, unit)
		if res != native.OK {
			return res
		}
		if snd.frames >= 0 && frames >= float64(snd.frames) {
			return native.ErrInvalidPosition
		}

		c.cursor = frames
		return native.OK
	})
}

func (e *Engine) ChannelPosition(ch native.Channel, unit native.TimeUnit) (uint32, native.Result) {
	var pos uint32
	res := e.withChannel(ch, func(c *channel) native.Result {
		snd, ok := e.sounds[c.sound]
		if !ok {
			return native.ErrInvalidHandle
		}

		var res native.Result
		pos, res = snd.fromFrames(c.cursor, unit)
		return res
	})

	return pos, res
}

func (e *Engine) ChannelSet3DAttributes(ch native.Channel, pos, vel native.Vector) native.Result {
	if !validVector(pos) || !validVector(vel) {
		return native.ErrInvalidFloat
	}

	return e.withChannel(ch, func(c *channel) native.Result {
		if !c.mode.Has(native.Mode3D) {
			return native.ErrNeeds3D
		}
		c.pos, c.vel = pos, vel
		return native.OK
	})
}

func (e *Engine) Channel3DAttributes(ch native.Channel) (pos, vel native.Vector, res native.Result) {
	res = e.withChannel(ch, func(c *channel) native.Result {
		if !c.mode.Has(native.Mode3D) {
			return native.ErrNeeds3D
		}
		pos, vel = c.pos, c.vel
		return native.OK
	})

	return pos, vel, res
}

func (e *Engine) ChannelSet3DMinMaxDistance(ch native.Channel, minDistance, maxDistance float32) native.Result {
	if !validFloat(minDistance) || !validFloat(maxDistance) {
		return native.ErrInvalidFloat
	}
	if minDistance < 0 || maxDistance < minDistance {
		return native.ErrInvalidParam
	}

	return e.withChannel(ch, func(c *channel) native.Result {
		if !c.mode.Has(native.Mode3D) {
			return native.ErrNeeds3D
		}
		c.minDist, c.maxDist = minDistance, maxDistance
		return native.OK
	})
}

func (e *Engine) Channel3DMinMaxDistance(ch native.Channel) (minDistance, maxDistance float32, res native.Result) {
	res = e.withChannel(ch, func(c *channel) native.Result {
		if !c.mode.Has(native.Mode3D) {
			return native.ErrNeeds3D
		}
		minDistance, maxDistance = c.minDist, c.maxDist
		return native.OK
	})

	return minDistance, maxDistance, res
}

func (e *Engine) ChannelCurrentSound(ch native.Channel) (native.Sound, native.Result) {
	var snd native.Sound
	res := e.withChannel(ch, func(c *channel) native.Result {
		snd = c.sound
		return native.OK
	})

	return snd, res
}
