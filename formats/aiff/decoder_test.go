// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	valid      bool
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	infoCalls  int
}

func (m *mockAiffReader) IsValidFile() bool { return m.valid }
func (m *mockAiffReader) ReadInfo()         { m.infoCalls++ }
func (m *mockAiffReader) Frames() int64     { return m.frames }
func (m *mockAiffReader) Bits() int         { return m.bitDepth }

func (m *mockAiffReader) Format() *goaudio.Format {
	if m.channels == 0 {
		return nil
	}
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want %v", err, ErrNotAiffFile)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte{}))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestProbe_Metadata(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{valid: true, sampleRate: 44100, channels: 2, bitDepth: 16, frames: 88200}

	src, err := probe(mock)
	if err != nil {
		t.Fatalf("probe() error = %v", err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), 44100)
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want %d", src.Channels(), 2)
	}
	if src.Length() != 88200 {
		t.Errorf("Length() = %d, want %d", src.Length(), 88200)
	}
	if mock.infoCalls != 1 {
		t.Errorf("ReadInfo() calls = %d, want 1", mock.infoCalls)
	}
}

func TestProbe_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mock *mockAiffReader
		want error
	}{
		{"invalid", &mockAiffReader{}, ErrNotAiffFile},
		{"12 bit", &mockAiffReader{valid: true, channels: 1, bitDepth: 12}, ErrUnsupportedBitDepth},
		{"no format", &mockAiffReader{valid: true, bitDepth: 16}, ErrUnsupportedAiffLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := probe(tt.mock)
			if !errors.Is(err, tt.want) {
				t.Errorf("probe() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestProbe_BitDepths(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 16, 24, 32} {
		mock := &mockAiffReader{valid: true, sampleRate: 8000, channels: 1, bitDepth: bits, frames: 1}
		if _, err := probe(mock); err != nil {
			t.Errorf("probe() with %d bits error = %v", bits, err)
		}
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNotAiffFile, ErrUnsupportedBitDepth, ErrUnsupportedAiffLayout}
	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}
