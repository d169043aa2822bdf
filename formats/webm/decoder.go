// SPDX-License-Identifier: EPL-2.0

//go:build cgo

package webm

import (
	"fmt"
	"io"

	"gopkg.in/hraban/opus.v2"

	"github.com/ik5/audnorm/audio"
	formatsopus "github.com/ik5/audnorm/formats/opus"
)

// Decoder reads the Opus track of a WebM or Matroska file. Output is always
// 48 kHz.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	t, err := demux(r)
	if err != nil {
		return nil, err
	}

	dec, err := opus.NewDecoder(formatsopus.SampleRate, t.head.Channels)
	if err != nil {
		return nil, fmt.Errorf("failed to create opus decoder: %w", err)
	}

	return newSource(dec, t), nil
}
