// SPDX-License-Identifier: EPL-2.0

// Package mp3 probes MP3 files.
//
// This package uses github.com/hajimehoshi/go-mp3, which walks the frame
// headers of a seekable input to learn the decoded length:
//
//	stream, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// go-mp3 always decodes to 16-bit stereo, so Channels is 2 even for mono
// files and Length counts stereo frames.
package mp3
