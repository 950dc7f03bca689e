// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/foxaudio/audio"
)

// Magic matches AIFF and AIFF-C containers.
var Magic = []string{"FORM????AIFF", "FORM????AIFC"}

// aiffReader is the part of aiff.Decoder the probe needs, to allow testing
type aiffReader interface {
	IsValidFile() bool
	ReadInfo()
	Format() *goaudio.Format
	Frames() int64
	Bits() int
}

type goaiff struct {
	*aiff.Decoder
}

func (d goaiff) Frames() int64 { return int64(d.NumSampleFrames) }
func (d goaiff) Bits() int     { return int(d.BitDepth) }

var newReader = func(r io.ReadSeeker) aiffReader {
	return goaiff{aiff.NewDecoder(r)}
}

type Decoder struct{}

// Decode reads the COMM chunk.
func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	return probe(newReader(r))
}

func probe(dec aiffReader) (audio.Stream, error) {
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.Bits() {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.Bits())
	}

	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return audio.Info{
		Rate:   format.SampleRate,
		Chans:  format.NumChannels,
		Frames: dec.Frames(),
	}, nil
}
