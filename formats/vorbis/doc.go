// SPDX-License-Identifier: EPL-2.0

// Package vorbis probes Ogg Vorbis files.
//
// This package uses github.com/jfreymuth/oggvorbis to read the Vorbis
// identification header (rate and channels) and the granule position of
// the final Ogg page, which is the length in frames.
//
//	stream, err := vorbis.Decoder{}.Decode(file)
package vorbis
