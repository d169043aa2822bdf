// SPDX-License-Identifier: EPL-2.0

package audnorm

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/formats/wav"
)

// Converter turns encoded audio into the normalized WAV layout: mono,
// audio.TargetRate, 16-bit PCM. A Converter is safe for concurrent use.
type Converter struct {
	registry *audio.Registry
	renderer *audio.Renderer
}

type Option func(*Converter)

// WithMethod selects the rate conversion algorithm. The default is
// audio.MethodCubic.
func WithMethod(m audio.Method) Option {
	return func(c *Converter) {
		c.renderer = audio.NewRenderer(audio.TargetRate, m)
	}
}

// WithRegistry replaces DefaultRegistry.
func WithRegistry(r *audio.Registry) Option {
	return func(c *Converter) {
		c.registry = r
	}
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		registry: DefaultRegistry(),
		renderer: audio.NewRenderer(audio.TargetRate, audio.MethodCubic),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Method reports the rate conversion algorithm in use.
func (c *Converter) Method() audio.Method { return c.renderer.Method() }

// Convert decodes r and normalizes it. format is a registry key such as
// "mp3"; when empty it is sniffed from the first bytes.
//
// Errors wrap audio.ErrDecodeFailure, audio.ErrRenderFailure or
// audio.ErrAllocationFailure. Cancellation returns ctx.Err() as is.
func (c *Converter) Convert(ctx context.Context, r io.Reader, format string) (wav.Buffer, error) {
	buf, _, err := c.Decode(ctx, r, format)
	if err != nil {
		return nil, err
	}

	return c.ConvertBuffer(ctx, buf)
}

// Decode reads r completely into a SampleBuffer and reports the format key
// it used.
func (c *Converter) Decode(ctx context.Context, r io.Reader, format string) (audio.SampleBuffer, string, error) {
	br := bufio.NewReader(r)

	if format == "" {
		head, _ := br.Peek(audio.SniffLen)
		format = audio.Sniff(head)
		if format == "" {
			return audio.SampleBuffer{}, "", fmt.Errorf("%w: %w: unrecognized header", audio.ErrDecodeFailure, ErrUnknownFormat)
		}
	}

	dec, ok := c.registry.Get(format)
	if !ok {
		return audio.SampleBuffer{}, format, fmt.Errorf("%w: %w: %q", audio.ErrDecodeFailure, ErrUnknownFormat, format)
	}

	src, err := dec.Decode(br)
	if err != nil {
		return audio.SampleBuffer{}, format, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(ctx, src)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return audio.SampleBuffer{}, format, ctxErr
		}
		return audio.SampleBuffer{}, format, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
	}

	return buf, format, nil
}

// ConvertBuffer renders an already decoded clip and encodes it.
func (c *Converter) ConvertBuffer(ctx context.Context, buf audio.SampleBuffer) (wav.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mono, err := c.renderer.Render(buf)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return wav.Encode(mono)
}
