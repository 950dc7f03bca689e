// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"testing"

	"github.com/ik5/foxaudio/formats/wav"
)

func TestDefault_Detect(t *testing.T) {
	t.Parallel()

	tone, err := wav.Bytes(8000, 1, wav.Sine(8000, 10, 440))
	if err != nil {
		t.Fatalf("wav.Bytes() error = %v", err)
	}

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"wav", tone, "wav"},
		{"aiff", []byte("FORM\x00\x00\x00\x2eAIFFCOMM"), "aiff"},
		{"aifc", []byte("FORM\x00\x00\x00\x2eAIFCFVER"), "aiff"},
		{"ogg", []byte("OggS\x00\x02"), "ogg vorbis"},
		{"mp3 id3", []byte("ID3\x03\x00\x00"), "mp3"},
		{"mp3 sync", []byte{0xff, 0xfb, 0x90, 0x64}, "mp3"},
	}

	registry := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _, ok := registry.Detect(tt.data)
			if !ok || got != tt.want {
				t.Errorf("Detect() = %q, %v, want %q, true", got, ok, tt.want)
			}
		})
	}
}

func TestDefault_ProbeWAV(t *testing.T) {
	t.Parallel()

	tone, err := wav.Bytes(8000, 1, wav.Sine(8000, 125, 440))
	if err != nil {
		t.Fatalf("wav.Bytes() error = %v", err)
	}

	format, stream, err := Default().Probe(tone)
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if format != "wav" || stream.Length() != 1000 {
		t.Errorf("Probe() = %q, %d frames, want wav, 1000 frames", format, stream.Length())
	}
}
