// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds_Distinct(t *testing.T) {
	t.Parallel()

	kinds := []error{ErrDecodeFailure, ErrRenderFailure, ErrAllocationFailure}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true", a, b)
			}
		}
	}
}

func TestErrorKinds_Wrapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		err   error
		kind  error
		cause error
	}{
		{
			name:  "render of invalid buffer",
			err:   fmt.Errorf("%w: %w", ErrRenderFailure, ErrPartialFrame),
			kind:  ErrRenderFailure,
			cause: ErrPartialFrame,
		},
		{
			name:  "decode with joined context",
			err:   errors.Join(fmt.Errorf("%w: %w", ErrDecodeFailure, errMockRead), errors.New("closing")),
			kind:  ErrDecodeFailure,
			cause: errMockRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.kind)
			}
			if !errors.Is(tt.err, tt.cause) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.cause)
			}
		})
	}
}

func TestRender_ErrorChain(t *testing.T) {
	t.Parallel()

	r := NewRenderer(TargetRate, MethodCubic)
	_, err := r.Render(SampleBuffer{Samples: []float32{0, 0, 0}, SampleRate: 8000, Channels: 2})

	if !errors.Is(err, ErrRenderFailure) || !errors.Is(err, ErrPartialFrame) {
		t.Errorf("Render() error = %v, want %v wrapping %v", err, ErrRenderFailure, ErrPartialFrame)
	}
	if errors.Is(err, ErrDecodeFailure) {
		t.Errorf("Render() error %v matches %v", err, ErrDecodeFailure)
	}
}
