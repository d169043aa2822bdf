// SPDX-License-Identifier: EPL-2.0

// Package audnorm normalizes audio clips for speech and classification
// back ends: whatever goes in comes out as a mono, 16 kHz, 16-bit PCM WAV
// with the canonical 44-byte header.
//
// # Quick Start
//
//	conv := audnorm.NewConverter()
//	f, _ := os.Open("clip.mp3")
//	out, err := conv.Convert(ctx, f, "") // format sniffed
//	if err != nil {
//	    // errors.Is(err, audio.ErrDecodeFailure) and friends
//	}
//	_, err = out.WriteTo(dst)
//
// # Pipeline
//
// Convert runs three stages:
//
//  1. Decode: a format decoder from the registry (wav, aiff, mp3, ogg, flac
//     and, in cgo builds, opus and webm) is drained into an
//     audio.SampleBuffer.
//  2. Render: audio.Renderer averages the channels and converts the rate.
//     The result always holds ceil(frames*16000/srcRate) samples.
//  3. Encode: wav.Encode clamps, quantizes and prepends the header.
//
// Decode and ConvertBuffer expose the stages separately, and WithMethod
// switches the rate converter:
//
//	conv := audnorm.NewConverter(audnorm.WithMethod(audio.MethodSoxr))
//
// # Failures
//
// Errors carry one of audio.ErrDecodeFailure, audio.ErrRenderFailure or
// audio.ErrAllocationFailure, with the underlying cause still in the chain.
// A cancelled context is returned unwrapped and no partial output is
// produced.
//
// # Lower Level
//
// ResampleToMono16 returns bare int16 samples at any rate for callers that
// write their own container; wav.WriteWAV16 writes the header for them.
package audnorm
