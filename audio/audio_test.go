// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
	"time"
)

// mockDecoder reports a fixed stream without reading.
type mockDecoder struct {
	name   string
	frames int64
}

func (d *mockDecoder) Decode(r io.ReadSeeker) (Stream, error) {
	return Info{Rate: 44100, Chans: 2, Frames: d.frames}, nil
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.ReadSeeker) (Stream, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_ReRegisterKeepsOrder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("wav", first, "RIFF")
	registry.Register("mp3", first, "ID3")
	registry.Register("wav", second, "RIFF")

	formats := registry.Formats()
	if len(formats) != 2 || formats[0] != "wav" || formats[1] != "mp3" {
		t.Errorf("Registry.Formats() = %v, want [wav mp3]", formats)
	}

	got, _ := registry.Get("wav")
	if got != second {
		t.Error("Registry.Get() did not return the replacement decoder")
	}
}

func TestRegistry_Detect(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}

	registry.Register("wav", wavDecoder, "RIFF????WAVE")
	registry.Register("mp3", mp3Decoder, "ID3", "\xff\xfb")

	tests := []struct {
		name   string
		data   []byte
		want   string
		wantOK bool
	}{
		{"wav", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), "wav", true},
		{"id3", []byte("ID3\x04\x00"), "mp3", true},
		{"frame sync", []byte{0xff, 0xfb, 0x90, 0x00}, "mp3", true},
		{"riff but not wave", []byte("RIFF\x24\x00\x00\x00AVI LIST"), "", false},
		{"too short", []byte("RIFF"), "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _, ok := registry.Detect(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("Registry.Detect() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Registry.Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistry_Probe(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{frames: 22050}, "RIFF????WAVE")
	registry.Register("bad", &failingDecoder{}, "BAD!")

	format, s, err := registry.Probe([]byte("RIFF\x00\x00\x00\x00WAVE"))
	if err != nil {
		t.Fatalf("Registry.Probe() error = %v", err)
	}
	if format != "wav" {
		t.Errorf("Registry.Probe() format = %q, want %q", format, "wav")
	}
	if s.Length() != 22050 {
		t.Errorf("Stream.Length() = %d, want %d", s.Length(), 22050)
	}

	if _, _, err := registry.Probe([]byte("nothing known")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Registry.Probe() error = %v, want %v", err, ErrUnknownFormat)
	}

	if _, _, err := registry.Probe([]byte("BAD!data")); err == nil {
		t.Error("Registry.Probe() expected decoder error")
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    Stream
		want time.Duration
	}{
		{"one second", Info{Rate: 44100, Chans: 2, Frames: 44100}, time.Second},
		{"half second", Info{Rate: 8000, Chans: 1, Frames: 4000}, 500 * time.Millisecond},
		{"unknown length", Info{Rate: 8000, Chans: 1, Frames: -1}, 0},
		{"no rate", Info{Frames: 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Duration(tt.s); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for range 100 {
			registry.Register("wav", &mockDecoder{}, "RIFF????WAVE")
		}
	}()

	for range 100 {
		registry.Detect([]byte("RIFF\x00\x00\x00\x00WAVE"))
		registry.Get("wav")
	}
	<-done
}
