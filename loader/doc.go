// SPDX-License-Identifier: EPL-2.0

// Package loader finds and opens the native engine libraries.
//
// File names depend on the platform and on whether the logging build of
// the engine is wanted:
//
//	windows                   x64/fmod.dll        x64/fmodL.dll
//	linux, freebsd, android   x64/libfmod.so      x64/libfmodL.so
//	darwin                    x64/libfmod.dylib   x64/libfmodL.dylib
//
// 32-bit hosts use the x86 directory. Hosts that resolve libraries by name
// (mobile runtimes) use the Managed strategy, which yields "fmod" or
// "fmodL".
//
// Libraries are opened with dlopen through github.com/ebitengine/purego on
// Unix and with LoadLibrary through golang.org/x/sys/windows on Windows, so
// no cgo toolchain is needed.
//
//	r := &loader.Resolver{Dir: "lib"}
//	libs, err := r.LoadAll(loader.ModeCoreAndStudio)
//	if err != nil {
//	    // ErrLibraryNotFound or ErrPlatformNotSupported; fatal for Init
//	}
//	defer libs.Close()
package loader
