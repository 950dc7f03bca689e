// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/foxaudio/audio"
	"github.com/ik5/foxaudio/formats/mp3"
)

// ExampleDecoder_Decode shows how to probe an MP3 file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	stream, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %v\n", stream.SampleRate(), audio.Duration(stream))
}
