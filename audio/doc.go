// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample-level building blocks of the normalization
// pipeline.
//
// # Sources
//
// A Source streams interleaved float32 samples in [-1, 1] together with its
// sample rate and channel count. Format decoders (see the formats/...
// packages) return Sources; a Registry maps format keys such as "wav" or
// "mp3" to Decoders, and Sniff guesses the key from a stream's magic bytes.
//
// # Buffers
//
// ReadAll drains a Source into a SampleBuffer, an in-memory clip:
//
//	buf, err := audio.ReadAll(ctx, src)
//	if err != nil {
//	    // decoder error or ctx cancellation
//	}
//
// SampleBuffer.Source streams a buffer back out, so buffers and decoders
// can feed the same processing chain.
//
// # Rendering
//
// A Renderer turns any SampleBuffer into a mono buffer at a fixed rate:
//
//	r := audio.NewRenderer(audio.TargetRate, audio.MethodCubic)
//	mono, err := r.Render(buf)
//
// The output always holds OutputLength(frames, srcRate, rate) frames, that is
// ceil(frames*rate/srcRate). Channels are averaged by MonoMixer, then the
// rate is converted by the selected Method:
//
//   - MethodCubic streams through Resampler, a Catmull-Rom interpolator with a
//     one-pole low-pass ahead of it when downsampling.
//   - MethodSoxr runs the polyphase FIR resampler from
//     github.com/tphakala/go-audio-resampling.
//
// Resampler and MonoMixer are Sources themselves and can be chained directly
// when streaming is preferred over whole-clip rendering:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Errors
//
// ErrDecodeFailure, ErrRenderFailure and ErrAllocationFailure classify
// pipeline failures and are matched with errors.Is.
package audio
