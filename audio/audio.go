// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// Stream describes an encoded sound well enough for the engine to size it.
type Stream interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// Length in PCM frames, or -1 when the container does not say.
	Length() int64

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Stream from an input reader.
type Decoder interface {
	Decode(r io.ReadSeeker) (Stream, error)
}

// Info is a plain Stream for decoders that only read headers.
type Info struct {
	Rate   int
	Chans  int
	Frames int64
}

func (i Info) SampleRate() int { return i.Rate }
func (i Info) Channels() int   { return i.Chans }
func (i Info) Length() int64   { return i.Frames }
func (i Info) Close() error    { return nil }

// Duration converts the length of s into wall time. Unknown lengths and
// streams without a sample rate report 0.
func Duration(s Stream) time.Duration {
	if s.Length() < 0 || s.SampleRate() <= 0 {
		return 0
	}

	return time.Duration(s.Length()) * time.Second / time.Duration(s.SampleRate())
}

type codec struct {
	format string
	dec    Decoder
	magic  []string
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
type Registry struct {
	codecs map[string]codec
	order  []string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]codec),
		mtx:    &sync.Mutex{},
	}
}

// Register adds d under format. Each magic string is matched against the
// start of the data by Detect; '?' matches any byte. Registering a format
// again replaces the previous decoder and magic.
func (r *Registry) Register(format string, d Decoder, magic ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.codecs[format]; !ok {
		r.order = append(r.order, format)
	}
	r.codecs[format] = codec{format: format, dec: d, magic: magic}
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[format]
	return c.dec, ok
}

// Formats lists registered formats in registration order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Detect returns the first registered format whose magic matches data.
func (r *Registry) Detect(data []byte) (string, Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, format := range r.order {
		c := r.codecs[format]
		for _, m := range c.magic {
			if match(m, data) {
				return c.format, c.dec, true
			}
		}
	}

	return "", nil, false
}

// Probe detects the format of data and decodes its header.
func (r *Registry) Probe(data []byte) (string, Stream, error) {
	format, dec, ok := r.Detect(data)
	if !ok {
		return "", nil, ErrUnknownFormat
	}

	s, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return format, nil, fmt.Errorf("%s: %w", format, err)
	}

	return format, s, nil
}

func match(magic string, data []byte) bool {
	if len(magic) == 0 || len(data) < len(magic) {
		return false
	}
	for i := range len(magic) {
		if magic[i] != '?' && magic[i] != data[i] {
			return false
		}
	}
	return true
}
