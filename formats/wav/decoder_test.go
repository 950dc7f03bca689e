// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// Helper function to create a minimal WAV file around raw PCM bytes
func createWAVFile(format uint16, sampleRate, channels, bitsPerSample int, pcm []byte, extra ...[]byte) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)

	var body bytes.Buffer
	body.WriteString("WAVE")

	// fmt chunk
	body.WriteString("fmt ")
	binary.Write(&body, binary.LittleEndian, uint32(16))
	binary.Write(&body, binary.LittleEndian, format)
	binary.Write(&body, binary.LittleEndian, numChannels)
	binary.Write(&body, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&body, binary.LittleEndian, byteRate)
	binary.Write(&body, binary.LittleEndian, blockAlign)
	binary.Write(&body, binary.LittleEndian, bits)

	// chunks between fmt and data
	for _, chunk := range extra {
		body.Write(chunk)
	}

	if pcm != nil {
		body.WriteString("data")
		binary.Write(&body, binary.LittleEndian, uint32(len(pcm)))
		body.Write(pcm)
	}

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(body.Len()))
	buf.Write(body.Bytes())

	return buf.Bytes()
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	data, err := Bytes(8000, 1, []int16{0, 100, 200, -100, -200, 0})
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), 8000)
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want %d", src.Channels(), 1)
	}
	if src.Length() != 6 {
		t.Errorf("Length() = %d, want %d", src.Length(), 6)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	data, err := Bytes(44100, 2, []int16{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want %d", src.Channels(), 2)
	}
	if src.Length() != 4 {
		t.Errorf("Length() = %d, want %d", src.Length(), 4)
	}
}

func TestDecoder_24BitLength(t *testing.T) {
	t.Parallel()

	pcm := make([]byte, 3*2*10) // 10 stereo frames
	data := createWAVFile(formatPCM, 48000, 2, 24, pcm)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Length() != 10 {
		t.Errorf("Length() = %d, want %d", src.Length(), 10)
	}
}

func TestDecoder_SkipsChunksBeforeData(t *testing.T) {
	t.Parallel()

	junk := append([]byte("junk"), 4, 0, 0, 0, 'a', 'b', 'c', 'd')
	data := createWAVFile(formatPCM, 16000, 1, 16, make([]byte, 200), junk)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Length() != 100 {
		t.Errorf("Length() = %d, want %d", src.Length(), 100)
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"not riff", []byte("This is not a WAV file at all, just text."), ErrNotWavFile},
		{"truncated", []byte("RIFF"), ErrNotWavFile},
		{"empty", nil, ErrNotWavFile},
		{"adpcm", createWAVFile(2, 8000, 1, 16, make([]byte, 16)), ErrUnsupportedEncoding},
		{"4 bit", createWAVFile(formatPCM, 8000, 1, 4, make([]byte, 16)), ErrUnsupportedEncoding},
		{"no data chunk", createWAVFile(formatPCM, 8000, 1, 16, nil), ErrNoPCMData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		samples    []int16
		want       error
	}{
		{"no samples", 8000, 1, nil, ErrNoSamples},
		{"zero rate", 0, 1, []int16{1}, ErrInvalidFormat},
		{"zero channels", 8000, 0, []int16{1}, ErrInvalidFormat},
		{"partial frame", 8000, 2, []int16{1, 2, 3}, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Bytes(tt.sampleRate, tt.channels, tt.samples)
			if !errors.Is(err, tt.want) {
				t.Errorf("Bytes() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncode_Header(t *testing.T) {
	t.Parallel()

	data, err := Bytes(22050, 1, Sine(22050, 100, 440))
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("Bytes() header = %q, want RIFF....WAVE", data[:12])
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); int(got) != len(data)-8 {
		t.Errorf("RIFF size = %d, want %d", got, len(data)-8)
	}
}

func TestSine(t *testing.T) {
	t.Parallel()

	s := Sine(8000, 250, 1000)
	if len(s) != 2000 {
		t.Fatalf("len(Sine()) = %d, want %d", len(s), 2000)
	}
	if s[0] != 0 {
		t.Errorf("Sine()[0] = %d, want 0", s[0])
	}
	// quarter period of 1 kHz at 8 kHz is sample 2
	if s[2] < 16000 || s[2] > 16384 {
		t.Errorf("Sine()[2] = %d, want about half scale", s[2])
	}
}

func TestWriteSeeker(t *testing.T) {
	t.Parallel()

	var ws writeSeeker
	ws.Write([]byte("hello world"))
	if _, err := ws.Seek(6, 0); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	ws.Write([]byte("WORLD"))

	if string(ws.data) != "hello WORLD" {
		t.Errorf("data = %q, want %q", ws.data, "hello WORLD")
	}
	if _, err := ws.Seek(-1, 0); err == nil {
		t.Error("Seek() to a negative offset should fail")
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	data, _ := Bytes(44100, 2, make([]int16, 44100*2))

	b.ReportAllocs()
	for b.Loop() {
		Decoder{}.Decode(bytes.NewReader(data))
	}
}
