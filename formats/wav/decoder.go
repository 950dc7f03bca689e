// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/foxaudio/audio"
)

// Magic opens every RIFF/WAVE file.
const Magic = "RIFF????WAVE"

const (
	formatPCM        = 1
	formatFloat      = 3
	formatExtensible = 0xFFFE
)

type Decoder struct{}

// Decode reads the fmt chunk and the size of the data chunk. The PCM data
// itself is not read.
func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	dec := gowav.NewDecoder(r)

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}

	switch dec.WavAudioFormat {
	case formatPCM, formatFloat, formatExtensible:
	default:
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}
	if dec.BitDepth < 8 || dec.BitDepth%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedEncoding, dec.BitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}

	frameSize := int64(dec.NumChans) * int64(dec.BitDepth/8)

	return audio.Info{
		Rate:   int(dec.SampleRate),
		Chans:  int(dec.NumChans),
		Frames: dec.PCMLen() / frameSize,
	}, nil
}
