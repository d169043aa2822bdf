// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sync"

	resampling "github.com/tphakala/go-audio-resampling"
)

// soxrPadDivisor sets the minimum silence placed around a clip before it
// goes through the FIR resampler: srcRate/soxrPadDivisor frames, a quarter
// second. That is far longer than the filter delay of any quality preset, so
// neither edge of the clip is trimmed by the pipeline.
const soxrPadDivisor = 4

// soxrStarts caches, per rate pair, the output index where the first frame
// after the leading padding lands.
var soxrStarts sync.Map // [2]int -> int

// resampleSoxr converts mono samples from srcRate to dstRate with the
// polyphase FIR resampler at high quality and returns at most want samples
// aligned to the source: output i is taken at time i/dstRate.
func resampleSoxr(samples []float32, srcRate, dstRate, want int) ([]float32, error) {
	padIn, _ := soxrPadding(srcRate, dstRate)

	start, err := soxrStart(srcRate, dstRate)
	if err != nil {
		return nil, err
	}

	in := make([]float64, padIn+len(samples)+padIn)
	for i, s := range samples {
		in[padIn+i] = float64(s)
	}

	out, err := runSoxr(in, srcRate, dstRate)
	if err != nil {
		return nil, err
	}

	if start >= len(out) {
		return nil, nil
	}
	out = out[start:]
	if len(out) > want {
		out = out[:want]
	}

	res := make([]float32, len(out))
	for i, s := range out {
		res[i] = float32(s)
	}

	return res, nil
}

// soxrPadding returns the padding length in source frames and its exact
// length in output frames. The input length is a whole number of rate
// periods so the padding maps onto the output grid without a fraction.
func soxrPadding(srcRate, dstRate int) (in, out int) {
	g := gcd(srcRate, dstRate)
	unitIn, unitOut := srcRate/g, dstRate/g

	minIn := srcRate / soxrPadDivisor
	units := max((minIn+unitIn-1)/unitIn, 1)

	return units * unitIn, units * unitOut
}

// soxrStart measures where the resampler puts the first frame after the
// padding by running a unit impulse through an identical pipeline. The
// filter delay differs per rate pair and preset, and the library drops part
// of it on its own, so it is measured rather than computed.
func soxrStart(srcRate, dstRate int) (int, error) {
	key := [2]int{srcRate, dstRate}
	if v, ok := soxrStarts.Load(key); ok {
		return v.(int), nil
	}

	padIn, _ := soxrPadding(srcRate, dstRate)
	impulse := make([]float64, 2*padIn+1)
	impulse[padIn] = 1

	out, err := runSoxr(impulse, srcRate, dstRate)
	if err != nil {
		return 0, err
	}

	peak := 0
	for i, v := range out {
		if v > out[peak] {
			peak = i
		}
	}

	soxrStarts.Store(key, peak)

	return peak, nil
}

// runSoxr processes a whole signal in one Process call followed by Flush to
// drain the filter delay line.
func runSoxr(in []float64, srcRate, dstRate int) ([]float64, error) {
	rs, err := resampling.New(&resampling.Config{
		InputRate:  float64(srcRate),
		OutputRate: float64(dstRate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	out, err := rs.Process(in)
	if err != nil {
		return nil, fmt.Errorf("resample error: %w", err)
	}

	tail, err := rs.Flush()
	if err != nil {
		return nil, fmt.Errorf("resample flush error: %w", err)
	}

	return append(out, tail...), nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
