// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"context"
	"fmt"

	"github.com/ik5/audnorm/audio"
)

func ExampleOutputLength() {
	fmt.Println(audio.OutputLength(44100, 44100, audio.TargetRate))
	fmt.Println(audio.OutputLength(3, 44100, audio.TargetRate))
	fmt.Println(audio.OutputLength(0, 44100, audio.TargetRate))
	// Output:
	// 16000
	// 2
	// 0
}

func ExampleRenderer_Render() {
	// half a second of stereo silence at 48 kHz
	buf := audio.SampleBuffer{
		Samples:    make([]float32, 2*24000),
		SampleRate: 48000,
		Channels:   2,
	}

	r := audio.NewRenderer(audio.TargetRate, audio.MethodCubic)
	mono, err := r.Render(buf)
	if err != nil {
		fmt.Println("render:", err)
		return
	}

	fmt.Println(mono.Frames(), mono.SampleRate, mono.Channels, mono.Duration())
	// Output: 8000 16000 1 500ms
}

func ExampleReadAll() {
	clip := audio.SampleBuffer{Samples: []float32{0.1, 0.2, 0.3, 0.4}, SampleRate: 8000, Channels: 2}

	buf, err := audio.ReadAll(context.Background(), clip.Source())
	if err != nil {
		fmt.Println("read:", err)
		return
	}

	fmt.Println(buf.Frames(), buf.Channels)
	// Output: 2 2
}

func ExampleParseMethod() {
	m, err := audio.ParseMethod("soxr")
	fmt.Println(m, err)
	// Output: soxr <nil>
}

func ExampleSniff() {
	fmt.Println(audio.Sniff([]byte("fLaC\x00\x00\x00\x22")))
	// Output: flac
}
