// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"fmt"

	"github.com/ik5/foxaudio/loader"
	"github.com/ik5/foxaudio/native"
)

// Mode selects which native systems the Manager creates.
type Mode = loader.Mode

const (
	ModeCore          = loader.ModeCore
	ModeCoreAndStudio = loader.ModeCoreAndStudio
)

// Config controls how Init brings the native engine up.
type Config struct {
	Mode Mode

	// RootDir is the root of the default FileLoader when none was given
	// with WithFileLoader.
	RootDir string

	MaxChannels     int
	DSPBufferLength uint32
	DSPBufferCount  int

	CoreFlags   native.InitFlags
	StudioFlags native.StudioInitFlags

	// PreInit runs after the systems are created and before they are
	// initialized, with the engine and the fresh handles. studio is zero
	// in ModeCore. A non-nil error aborts Init. The hook runs while Init
	// holds the Manager lock and must not call back into the Manager.
	PreInit func(e native.Engine, core native.System, studio native.StudioSystem) error
}

func DefaultConfig() Config {
	return Config{
		Mode:            ModeCore,
		MaxChannels:     256,
		DSPBufferLength: 4,
		DSPBufferCount:  32,
		CoreFlags:       native.InitChannelLowpass | native.InitChannelDistanceFilter,
		StudioFlags:     native.StudioInitNormal,
	}
}

// withDefaults replaces zero values with the defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.MaxChannels == 0 {
		c.MaxChannels = def.MaxChannels
	}
	if c.DSPBufferLength == 0 {
		c.DSPBufferLength = def.DSPBufferLength
	}
	if c.DSPBufferCount == 0 {
		c.DSPBufferCount = def.DSPBufferCount
	}
	if c.CoreFlags == 0 {
		c.CoreFlags = def.CoreFlags
	}

	return c
}

func (c Config) validate() error {
	if c.Mode != ModeCore && c.Mode != ModeCoreAndStudio {
		return fmt.Errorf("%w: mode %d", ErrInvalidConfig, c.Mode)
	}
	if c.MaxChannels < 0 || c.DSPBufferCount < 0 {
		return fmt.Errorf("%w: negative channel or buffer count", ErrInvalidConfig)
	}

	return nil
}
