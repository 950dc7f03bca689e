// SPDX-License-Identifier: EPL-2.0

package nativetest

import (
	"testing"

	"github.com/ik5/foxaudio/formats/wav"
	"github.com/ik5/foxaudio/native/soft"
)

// Bank is a software engine bank with one event of every kind.
const Bank = `
path: bank:/Master
parameters:
  - {name: Weather, min: 0, max: 1, default: 0}
buses:
  - path: bus:/SFX
vcas:
  - path: vca:/Master
events:
  - path: event:/UI/Click
    length_ms: 100
    oneshot: true
    bus: bus:/SFX
  - path: event:/Ambience/Rain
    length_ms: 2000
    3d: true
    parameters:
      - {name: Intensity, min: 0, max: 10, default: 5}
  - path: event:/Music/Theme
    id: "{8a1f6c1e-3c0b-4d2a-9f3e-1b2c3d4e5f60}"
    length_ms: 60000
    bus: bus:/Music
`

// Tone returns ms milliseconds of a 440 Hz mono sine at 8 kHz as WAV.
func Tone(tb testing.TB, ms int) []byte {
	tb.Helper()

	data, err := wav.Bytes(8000, 1, wav.Sine(8000, ms, 440))
	if err != nil {
		tb.Fatalf("encode tone: %v", err)
	}

	return data
}

// Engine returns a software engine on a manual clock wrapped for counting.
func Engine() (*Counting, *soft.Engine, *soft.ManualClock) {
	clock := soft.NewManualClock()
	e := soft.New(soft.WithClock(clock))

	return NewCounting(e), e, clock
}
