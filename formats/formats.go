// SPDX-License-Identifier: EPL-2.0

// Package formats bundles the decoders of its subpackages.
package formats

import (
	"github.com/ik5/foxaudio/audio"
	"github.com/ik5/foxaudio/formats/aiff"
	"github.com/ik5/foxaudio/formats/mp3"
	"github.com/ik5/foxaudio/formats/vorbis"
	"github.com/ik5/foxaudio/formats/wav"
)

// Default returns a registry with wav, aiff, ogg vorbis and mp3 registered,
// in that order.
func Default() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{}, wav.Magic)
	r.Register("aiff", aiff.Decoder{}, aiff.Magic...)
	r.Register("ogg vorbis", vorbis.Decoder{}, vorbis.Magic)
	r.Register("mp3", mp3.Decoder{}, mp3.Magic...)

	return r
}
