// SPDX-License-Identifier: EPL-2.0

package foxaudio_test

import (
	"fmt"
	"log"
	"time"

	"github.com/ik5/foxaudio"
	"github.com/ik5/foxaudio/formats/wav"
	"github.com/ik5/foxaudio/native"
	"github.com/ik5/foxaudio/native/soft"
)

func Example() {
	clock := soft.NewManualClock()
	m := foxaudio.New(soft.New(soft.WithClock(clock)))
	if err := m.Init(foxaudio.DefaultConfig()); err != nil {
		log.Fatal(err)
	}
	defer m.Unload()

	tone, err := wav.Bytes(8000, 1, wav.Sine(8000, 250, 440))
	if err != nil {
		log.Fatal(err)
	}

	snd, err := m.LoadSoundFromBytes(tone)
	if err != nil {
		log.Fatal(err)
	}
	defer snd.Dispose()

	length, _ := snd.Length(native.TimeUnitMS)
	fmt.Println("length:", length, "ms")

	ch, err := snd.Play(false)
	if err != nil {
		log.Fatal(err)
	}

	for frame := 0; ; frame++ {
		playing, _ := ch.IsPlaying()
		if !playing {
			fmt.Println("finished after", frame, "frames")
			break
		}
		clock.Advance(100 * time.Millisecond)
		m.Update()
	}

	// Output:
	// length: 250 ms
	// finished after 3 frames
}

func ExampleManager_Event() {
	m := foxaudio.New(soft.New())

	cfg := foxaudio.DefaultConfig()
	cfg.Mode = foxaudio.ModeCoreAndStudio
	if err := m.Init(cfg); err != nil {
		log.Fatal(err)
	}
	defer m.Unload()

	bank := []byte(`
path: bank:/UI
events:
  - path: event:/UI/Click
    length_ms: 50
    oneshot: true
`)
	if _, err := m.LoadBankFromBytes(bank, native.LoadBankNormal); err != nil {
		log.Fatal(err)
	}

	ev, err := m.Event("event:/UI/Click")
	if err != nil {
		log.Fatal(err)
	}
	length, _ := ev.Length()
	oneshot, _ := ev.IsOneshot()
	fmt.Println(length, oneshot)

	// Output:
	// 50ms true
}
