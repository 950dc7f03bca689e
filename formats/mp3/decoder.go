// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/foxaudio/audio"
)

// Magic matches an ID3v2 tag or a bare MPEG-1/2 layer 3 frame sync.
var Magic = []string{"ID3", "\xff\xfb", "\xff\xfa", "\xff\xf3", "\xff\xf2"}

// go-mp3 always produces 16-bit stereo.
const (
	outChannels   = 2
	bytesPerFrame = 4
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	SampleRate() int
	Length() int64
}

type Decoder struct{}

// Decode scans the frame headers. The reader must be seekable for the
// length to be known.
func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return probe(dec), nil
}

func probe(dec mp3Reader) audio.Stream {
	frames := int64(-1)
	if n := dec.Length(); n >= 0 {
		frames = n / bytesPerFrame
	}

	return audio.Info{
		Rate:   dec.SampleRate(),
		Chans:  outChannels,
		Frames: frames,
	}
}
