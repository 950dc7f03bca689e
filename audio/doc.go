// SPDX-License-Identifier: EPL-2.0

// Package audio identifies encoded sounds.
//
// The engine never decodes PCM itself; it needs to know what a buffer is
// (format, sample rate, channel count and length) to answer length queries
// and to drive play cursors. This package holds the pieces for that:
//   - Stream describes a probed sound
//   - Decoder reads a Stream from an io.ReadSeeker
//   - Registry maps format names to decoders and sniffs formats by magic
//
// # Format Registry
//
// Decoders are registered with the magic bytes that open their container.
// A '?' in a magic string matches any byte, so "RIFF????WAVE" skips the
// chunk size field:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{}, "RIFF????WAVE")
//	format, stream, err := registry.Probe(data)
//
// formats.Default returns a registry with every bundled decoder.
//
// # Lengths
//
// Stream.Length is measured in PCM frames (one sample per channel). Some
// containers do not record it without a full decode; those streams report
// -1 and Duration returns 0 for them.
package audio
