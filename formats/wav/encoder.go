// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Encode writes interleaved 16-bit PCM samples as a WAV file.
func Encode(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if sampleRate <= 0 || channels <= 0 {
		return fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidFormat, sampleRate, channels)
	}
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrInvalidFormat, len(samples), channels)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Bytes is Encode into memory.
func Bytes(sampleRate, channels int, samples []int16) ([]byte, error) {
	var buf writeSeeker
	if err := Encode(&buf, sampleRate, channels, samples); err != nil {
		return nil, err
	}

	return buf.data, nil
}

// Sine renders a mono sine tone at half amplitude.
func Sine(sampleRate, ms int, freq float64) []int16 {
	n := sampleRate * ms / 1000
	out := make([]int16, n)
	for i := range out {
		v := 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		out[i] = int16(v * math.MaxInt16)
	}

	return out
}

// writeSeeker implements io.WriteSeeker for in-memory data
type writeSeeker struct {
	data   []byte
	offset int64
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	end := ws.offset + int64(len(p))
	if end > int64(len(ws.data)) {
		ws.data = append(ws.data, make([]byte, end-int64(len(ws.data)))...)
	}
	copy(ws.data[ws.offset:], p)
	ws.offset = end

	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = ws.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(ws.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, errors.New("negative position")
	}

	ws.offset = newOffset
	return newOffset, nil
}
