// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDesktop_FileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos    string
		bits    int
		logging bool
		want    string
	}{
		{"windows", 64, false, "x64/fmod.dll"},
		{"windows", 32, true, "x86/fmodL.dll"},
		{"linux", 64, false, "x64/libfmod.so"},
		{"linux", 64, true, "x64/libfmodL.so"},
		{"freebsd", 32, false, "x86/libfmod.so"},
		{"android", 64, false, "x64/libfmod.so"},
		{"darwin", 64, true, "x64/libfmodL.dylib"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.want, func(t *testing.T) {
			t.Parallel()

			got, err := Desktop{GOOS: tt.goos, Bits: tt.bits}.FileName("fmod", tt.logging)
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestDesktop_UnsupportedPlatform(t *testing.T) {
	t.Parallel()

	_, err := Desktop{GOOS: "plan9", Bits: 64}.FileName("fmod", false)
	assert.ErrorIs(t, err, ErrPlatformNotSupported)
}

func TestManaged_FileName(t *testing.T) {
	t.Parallel()

	got, err := Managed{}.FileName("fmodstudio", true)
	require.NoError(t, err)
	assert.Equal(t, "fmodstudioL", got)

	got, err = Managed{}.FileName("fmod", false)
	require.NoError(t, err)
	assert.Equal(t, "fmod", got)
}

type fakeLibrary struct {
	path   string
	closed int
}

func (l *fakeLibrary) Symbol(name string) (uintptr, error) { return 0, ErrSymbolNotFound }
func (l *fakeLibrary) Close() error                        { l.closed++; return nil }
func (l *fakeLibrary) Path() string                        { return l.path }

type fakeOpener struct {
	opened []*fakeLibrary
	fail   map[string]bool
}

func (o *fakeOpener) open(path string) (Library, error) {
	if o.fail[path] {
		return nil, errors.New("no such file")
	}
	lib := &fakeLibrary{path: path}
	o.opened = append(o.opened, lib)
	return lib, nil
}

func TestResolver_Path(t *testing.T) {
	t.Parallel()

	r := &Resolver{Dir: "/opt/game/lib", Strategy: Desktop{GOOS: "linux", Bits: 64}}
	got, err := r.Path(StudioLibrary)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/game/lib", "x64", "libfmodstudio.so"), got)

	r = &Resolver{Strategy: Managed{}, Logging: true}
	got, err = r.Path(CoreLibrary)
	require.NoError(t, err)
	assert.Equal(t, "fmodL", got)
}

func TestResolver_LoadAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode      Mode
		wantPaths []string
	}{
		{ModeCore, []string{"fmod"}},
		{ModeCoreAndStudio, []string{"fmod", "fmodstudio"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			t.Parallel()

			o := &fakeOpener{}
			r := &Resolver{Strategy: Managed{}, Opener: o.open}

			libs, err := r.LoadAll(tt.mode)
			require.NoError(t, err)

			var paths []string
			for _, lib := range o.opened {
				paths = append(paths, lib.path)
			}
			assert.Equal(t, tt.wantPaths, paths)
			assert.Equal(t, tt.mode == ModeCoreAndStudio, libs.Studio != nil)

			require.NoError(t, libs.Close())
			for _, lib := range o.opened {
				assert.Equal(t, 1, lib.closed, lib.path)
			}
			require.NoError(t, libs.Close())
		})
	}
}

func TestResolver_StudioFailureClosesCore(t *testing.T) {
	t.Parallel()

	o := &fakeOpener{fail: map[string]bool{"fmodstudio": true}}
	r := &Resolver{Strategy: Managed{}, Opener: o.open}

	_, err := r.LoadAll(ModeCoreAndStudio)
	require.ErrorIs(t, err, ErrLibraryNotFound)
	assert.Contains(t, err.Error(), "fmodstudio")
	require.Len(t, o.opened, 1)
	assert.Equal(t, 1, o.opened[0].closed)
}

func TestResolver_UnsupportedPlatformSkipsOpener(t *testing.T) {
	t.Parallel()

	o := &fakeOpener{}
	r := &Resolver{Strategy: Desktop{GOOS: "js"}, Opener: o.open}

	_, err := r.Load(CoreLibrary)
	require.ErrorIs(t, err, ErrPlatformNotSupported)
	assert.Empty(t, o.opened)
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "core", ModeCore.String())
	assert.Equal(t, "core+studio", ModeCoreAndStudio.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

// Not parallel: swaps the package logger.
func TestResolver_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	o := &fakeOpener{fail: map[string]bool{"fmodstudio": true}}
	r := &Resolver{Strategy: Managed{}, Opener: o.open}
	_, _ = r.LoadAll(ModeCoreAndStudio)

	assert.Equal(t, 1, logs.FilterMessage("native library loaded").Len())
	failed := logs.FilterMessage("native library load failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "fmodstudio", failed[0].ContextMap()["path"])
}

func TestDefaultOpener_MissingLibrary(t *testing.T) {
	t.Parallel()

	_, err := DefaultOpener(filepath.Join(t.TempDir(), "libdoesnotexist.so"))
	assert.Error(t, err)
}
