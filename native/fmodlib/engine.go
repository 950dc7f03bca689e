// SPDX-License-Identifier: EPL-2.0

//go:build darwin || freebsd || linux || windows

package fmodlib

import (
	"reflect"

	"github.com/ebitengine/purego"
	"github.com/ik5/foxaudio/loader"
	"github.com/ik5/foxaudio/native"
	"go.uber.org/zap"
)

// headerVersion is FMOD_VERSION of the 2.02 headers the bindings follow.
const headerVersion = 0x00020222

// Engine is a native.Engine backed by the FMOD libraries.
type Engine struct {
	libs *loader.Libraries
	mode loader.Mode

	core   coreFuncs
	studio studioFuncs
}

var _ native.Engine = (*Engine)(nil)

// Open loads the libraries mode needs and binds every function. A missing
// symbol closes the libraries again.
func Open(r *loader.Resolver, mode loader.Mode) (*Engine, error) {
	libs, err := r.LoadAll(mode)
	if err != nil {
		return nil, err
	}

	e := &Engine{libs: libs, mode: mode}
	if err := bind(libs.Core, e.core.bindings()); err != nil {
		libs.Close()
		return nil, err
	}

	if libs.Studio != nil {
		err = bind(libs.Studio, e.studio.bindings())
	} else {
		stub(e.studio.bindings(), native.ErrStudioUninitialized)
	}
	if err != nil {
		libs.Close()
		return nil, err
	}

	Logger().Info("fmod bound",
		zap.Stringer("mode", mode),
		zap.String("core", libs.Core.Path()),
	)

	return e, nil
}

// Mode reports which libraries are bound.
func (e *Engine) Mode() loader.Mode { return e.mode }

// Close unloads the libraries. Release the native systems first.
func (e *Engine) Close() error {
	return e.libs.Close()
}

func bind(lib loader.Library, bs []binding) error {
	for _, b := range bs {
		addr, err := lib.Symbol(b.symbol)
		if err != nil {
			Logger().Error("fmod symbol missing",
				zap.String("library", lib.Path()),
				zap.String("symbol", b.symbol),
			)
			return err
		}
		purego.RegisterFunc(b.fn, addr)
	}

	return nil
}

// stub makes every function of bs return res without a native call.
func stub(bs []binding, res native.Result) {
	for _, b := range bs {
		fn := reflect.ValueOf(b.fn).Elem()
		out := []reflect.Value{reflect.ValueOf(res).Convert(fn.Type().Out(0))}
		fn.Set(reflect.MakeFunc(fn.Type(), func([]reflect.Value) []reflect.Value {
			return out
		}))
	}
}

func cbool(b bool) int32 {
	if b {
		return 1
	}

	return 0
}
