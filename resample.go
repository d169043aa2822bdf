// SPDX-License-Identifier: EPL-2.0

package audnorm

import (
	"fmt"
	"io"

	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/utils"
)

// ResampleToMono16 drains src, averages its channels and converts the result
// to targetRate 16-bit PCM with cubic interpolation. It returns bare samples
// without a WAV header; wav.WriteWAV16 adds one.
//
// The output holds audio.OutputLength(frames, src.SampleRate(), targetRate)
// samples. bufferSize is the read size used while draining src.
//
//	pcm16, rate, err := audnorm.ResampleToMono16(src, 16000, 4096)
//	if err != nil {
//	    return err
//	}
//	err = wav.WriteWAV16(f, rate, pcm16)
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}

	mono := audio.NewMonoMixer(src)
	buf := make([]float32, bufferSize)
	clip := audio.SampleBuffer{
		Samples:    make([]float32, 0, bufferSize),
		SampleRate: src.SampleRate(),
		Channels:   1,
	}

	for {
		n, err := mono.ReadSamples(buf)
		clip.Samples = append(clip.Samples, buf[:n]...)

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	rendered, err := audio.NewRenderer(targetRate, audio.MethodCubic).Render(clip)
	if err != nil {
		return nil, targetRate, err
	}

	pcm16 := make([]int16, len(rendered.Samples))
	for i, s := range rendered.Samples {
		pcm16[i] = utils.Float32ToInt16(s)
	}

	return pcm16, targetRate, nil
}
