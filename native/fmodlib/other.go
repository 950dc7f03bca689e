// SPDX-License-Identifier: EPL-2.0

//go:build !darwin && !freebsd && !linux && !windows

package fmodlib

import (
	"github.com/ik5/foxaudio/loader"
	"github.com/ik5/foxaudio/native"
)

// Engine cannot be bound on this platform.
type Engine struct {
	native.Engine
}

// Open always fails with loader.ErrPlatformNotSupported.
func Open(*loader.Resolver, loader.Mode) (*Engine, error) {
	return nil, loader.ErrPlatformNotSupported
}

func (e *Engine) Mode() loader.Mode { return loader.ModeCore }

func (e *Engine) Close() error { return nil }
