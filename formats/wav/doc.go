// SPDX-License-Identifier: EPL-2.0

// Package wav probes and writes WAV files.
//
// It uses the github.com/go-audio library for RIFF chunk handling.
//
// # Probing
//
// Decoder reads the fmt chunk and the size of the data chunk, which is
// enough to compute the length of the sound:
//
//	stream, err := wav.Decoder{}.Decode(bytes.NewReader(data))
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(stream.SampleRate(), stream.Channels(), stream.Length())
//
// PCM (8, 16, 24 and 32 bit), IEEE float and WAVE_FORMAT_EXTENSIBLE files
// are accepted.
//
// # Writing WAV Files
//
// Encode writes interleaved 16-bit samples to an io.WriteSeeker; Bytes
// does the same into memory. Sine renders a test tone:
//
//	data, err := wav.Bytes(44100, 1, wav.Sine(44100, 250, 440))
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a RIFF/WAVE file
//   - ErrUnsupportedEncoding: Compressed or odd bit depth data
//   - ErrNoPCMData: The data chunk is missing
//   - ErrInvalidFormat, ErrNoSamples: Rejected Encode arguments
package wav
