// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audnorm/utils"
)

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass runs ahead of the interpolator when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window of 4 frames around the read position:
	// [0] = t-1, [1] = t0, [2] = t+1, [3] = t+2.
	// Missing neighbours are replaced by the nearest present frame.
	frames   [4][]float32
	hasFrame [4]bool
	primed   bool

	// fractional position between frames[1] and frames[2]
	pos float64

	srcBuf []float32
	eof    bool

	lowPass     bool
	alpha       float32
	filterState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		step:        step,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		lowPass:     step > 1.0,
		alpha:       0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// maxEmptyReads bounds consecutive (0, nil) reads while assembling a frame.
const maxEmptyReads = 100

// readFrame reads one frame into dst, calling the source as often as needed
// since a Source may return part of a frame. ok reports whether a full frame
// arrived; a trailing partial frame at EOF is dropped.
func (r *Resampler) readFrame(dst []float32) (ok bool, err error) {
	got, empty := 0, 0
	for got < r.channels {
		n, err := r.src.ReadSamples(r.srcBuf[got:])
		got += n
		if err == io.EOF {
			r.eof = true
			break
		}
		if err != nil {
			return false, fmt.Errorf("%w", err)
		}
		if n > 0 {
			empty = 0
			continue
		}
		empty++
		if empty >= maxEmptyReads {
			return false, io.ErrNoProgress
		}
	}

	if got < r.channels {
		return false, nil
	}
	copy(dst, r.srcBuf)

	return true, nil
}

func (r *Resampler) filter(frame []float32) {
	if !r.lowPass {
		return
	}
	for c := range r.channels {
		frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.filterState[c]
		r.filterState[c] = frame[c]
	}
}

// prime loads the first source frames into window slots 1..3. Slot 0 stays
// empty until the window moves, so the first output lands on source frame 0.
func (r *Resampler) prime() error {
	seeded := false
	for i := 1; i < len(r.frames) && !r.eof; i++ {
		ok, err := r.readFrame(r.frames[i])
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if !seeded && r.lowPass {
			// seed the filter to avoid a start-up transient
			copy(r.filterState, r.frames[i])
			seeded = true
		}
		r.filter(r.frames[i])
		r.hasFrame[i] = true
	}

	if !r.hasFrame[1] {
		return io.EOF
	}
	r.primed = true

	return nil
}

// advance shifts the window one frame forward.
func (r *Resampler) advance() error {
	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])
	r.hasFrame[0] = r.hasFrame[1]
	r.hasFrame[1] = r.hasFrame[2]
	r.hasFrame[2] = r.hasFrame[3]
	r.hasFrame[3] = false

	if !r.eof {
		ok, err := r.readFrame(r.frames[3])
		if err != nil {
			return err
		}
		if ok {
			r.filter(r.frames[3])
		}
		r.hasFrame[3] = ok
	}

	if !r.hasFrame[1] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	want := len(dst) / r.channels

	for written < want {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.hasFrame[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			y1 := r.frames[1][c]
			y0, y2 := y1, y1
			if r.hasFrame[0] {
				y0 = r.frames[0][c]
			}
			if r.hasFrame[2] {
				y2 = r.frames[2][c]
			}
			y3 := y2
			if r.hasFrame[3] {
				y3 = r.frames[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
