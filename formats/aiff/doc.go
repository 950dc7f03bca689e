// SPDX-License-Identifier: EPL-2.0

// Package aiff probes AIFF (Audio Interchange File Format) files.
//
// This package uses github.com/go-audio/aiff to read the COMM chunk of
// AIFF and AIFF-C files, which records the channel count, the number of
// sample frames, the sample size and the sample rate.
//
//	stream, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(stream.Length(), "frames")
//
// 8, 16, 24 and 32 bit sample sizes are accepted.
//
// # Error Handling
//
//   - ErrNotAiffFile: The input is not a FORM/AIFF container
//   - ErrUnsupportedBitDepth: Sample size the engine cannot play
//   - ErrUnsupportedAiffLayout: COMM chunk missing or empty
package aiff
