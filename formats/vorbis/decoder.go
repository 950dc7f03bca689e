// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/foxaudio/audio"
	"github.com/jfreymuth/oggvorbis"
)

// Magic is the Ogg page capture pattern.
const Magic = "OggS"

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
}

type Decoder struct{}

// Decode reads the identification header and, since r is seekable, the
// granule position of the last page.
func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return probe(dec), nil
}

func probe(dec oggReader) audio.Stream {
	frames := dec.Length()
	if frames == 0 {
		// oggvorbis reports 0 when the last page could not be located.
		frames = -1
	}

	return audio.Info{
		Rate:   dec.SampleRate(),
		Chans:  dec.Channels(),
		Frames: frames,
	}
}
