// SPDX-License-Identifier: EPL-2.0

// Package nativetest provides engine helpers for tests: a decorator that
// counts and fails native calls, and fixture data for the software engine.
package nativetest

import (
	"sync"

	"github.com/ik5/foxaudio/native"
)

// Counting decorates a native.Engine. It counts the lifecycle calls that
// create or release native objects and can force any of them to fail.
type Counting struct {
	native.Engine

	mu    sync.Mutex
	calls map[string]int
	fail  map[string]native.Result
}

func NewCounting(e native.Engine) *Counting {
	return &Counting{
		Engine: e,
		calls:  make(map[string]int),
		fail:   make(map[string]native.Result),
	}
}

// Calls returns how often the named method was called.
func (c *Counting) Calls(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls[name]
}

// Fail makes every following call of the named method return res without
// reaching the wrapped engine. OK clears the failure.
func (c *Counting) Fail(name string, res native.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res == native.OK {
		delete(c.fail, name)
		return
	}
	c.fail[name] = res
}

func (c *Counting) hit(name string) native.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls[name]++
	if res, ok := c.fail[name]; ok {
		return res
	}

	return native.OK
}

func (c *Counting) SystemCreate() (native.System, native.Result) {
	if res := c.hit("SystemCreate"); res != native.OK {
		return 0, res
	}
	return c.Engine.SystemCreate()
}

func (c *Counting) SystemInit(sys native.System, maxChannels int, flags native.InitFlags) native.Result {
	if res := c.hit("SystemInit"); res != native.OK {
		return res
	}
	return c.Engine.SystemInit(sys, maxChannels, flags)
}

func (c *Counting) SystemRelease(sys native.System) native.Result {
	if res := c.hit("SystemRelease"); res != native.OK {
		return res
	}
	return c.Engine.SystemRelease(sys)
}

func (c *Counting) SystemUpdate(sys native.System) native.Result {
	if res := c.hit("SystemUpdate"); res != native.OK {
		return res
	}
	return c.Engine.SystemUpdate(sys)
}

func (c *Counting) SystemSetDSPBufferSize(sys native.System, length uint32, count int) native.Result {
	if res := c.hit("SystemSetDSPBufferSize"); res != native.OK {
		return res
	}
	return c.Engine.SystemSetDSPBufferSize(sys, length, count)
}

func (c *Counting) SystemCreateSound(sys native.System, data []byte, mode native.Mode) (native.Sound, native.Result) {
	if res := c.hit("SystemCreateSound"); res != native.OK {
		return 0, res
	}
	return c.Engine.SystemCreateSound(sys, data, mode)
}

func (c *Counting) SystemPlaySound(sys native.System, snd native.Sound, g native.ChannelGroup, paused bool) (native.Channel, native.Result) {
	if res := c.hit("SystemPlaySound"); res != native.OK {
		return 0, res
	}
	return c.Engine.SystemPlaySound(sys, snd, g, paused)
}

func (c *Counting) SystemCreateChannelGroup(sys native.System, name string) (native.ChannelGroup, native.Result) {
	if res := c.hit("SystemCreateChannelGroup"); res != native.OK {
		return 0, res
	}
	return c.Engine.SystemCreateChannelGroup(sys, name)
}

func (c *Counting) SoundRelease(snd native.Sound) native.Result {
	if res := c.hit("SoundRelease"); res != native.OK {
		return res
	}
	return c.Engine.SoundRelease(snd)
}

func (c *Counting) ChannelStop(ch native.Channel) native.Result {
	if res := c.hit("ChannelStop"); res != native.OK {
		return res
	}
	return c.Engine.ChannelStop(ch)
}

func (c *Counting) ChannelGroupRelease(g native.ChannelGroup) native.Result {
	if res := c.hit("ChannelGroupRelease"); res != native.OK {
		return res
	}
	return c.Engine.ChannelGroupRelease(g)
}

func (c *Counting) StudioSystemCreate() (native.StudioSystem, native.Result) {
	if res := c.hit("StudioSystemCreate"); res != native.OK {
		return 0, res
	}
	return c.Engine.StudioSystemCreate()
}

func (c *Counting) StudioSystemInitialize(s native.StudioSystem, maxChannels int, studioFlags native.StudioInitFlags, coreFlags native.InitFlags) native.Result {
	if res := c.hit("StudioSystemInitialize"); res != native.OK {
		return res
	}
	return c.Engine.StudioSystemInitialize(s, maxChannels, studioFlags, coreFlags)
}

func (c *Counting) StudioSystemRelease(s native.StudioSystem) native.Result {
	if res := c.hit("StudioSystemRelease"); res != native.OK {
		return res
	}
	return c.Engine.StudioSystemRelease(s)
}

func (c *Counting) StudioSystemUpdate(s native.StudioSystem) native.Result {
	if res := c.hit("StudioSystemUpdate"); res != native.OK {
		return res
	}
	return c.Engine.StudioSystemUpdate(s)
}

func (c *Counting) StudioSystemLoadBankMemory(s native.StudioSystem, data []byte, mode native.LoadMemoryMode, flags native.LoadBankFlags) (native.Bank, native.Result) {
	if res := c.hit("StudioSystemLoadBankMemory"); res != native.OK {
		return 0, res
	}
	return c.Engine.StudioSystemLoadBankMemory(s, data, mode, flags)
}

func (c *Counting) BankUnload(b native.Bank) native.Result {
	if res := c.hit("BankUnload"); res != native.OK {
		return res
	}
	return c.Engine.BankUnload(b)
}

func (c *Counting) EventInstanceRelease(i native.EventInstance) native.Result {
	if res := c.hit("EventInstanceRelease"); res != native.OK {
		return res
	}
	return c.Engine.EventInstanceRelease(i)
}

func (c *Counting) ChannelGroupSetUserData(g native.ChannelGroup, data uintptr) native.Result {
	if res := c.hit("ChannelGroupSetUserData"); res != native.OK {
		return res
	}
	return c.Engine.ChannelGroupSetUserData(g, data)
}

func (c *Counting) EventDescriptionSetUserData(d native.EventDescription, data uintptr) native.Result {
	if res := c.hit("EventDescriptionSetUserData"); res != native.OK {
		return res
	}
	return c.Engine.EventDescriptionSetUserData(d, data)
}
