// SPDX-License-Identifier: EPL-2.0

package audnorm

import (
	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/formats/aiff"
	"github.com/ik5/audnorm/formats/flac"
	"github.com/ik5/audnorm/formats/mp3"
	"github.com/ik5/audnorm/formats/vorbis"
	"github.com/ik5/audnorm/formats/wav"
)

// DefaultRegistry returns a registry holding every decoder built into this
// binary: wav, aiff, mp3, ogg (Vorbis) and flac, plus opus and webm when
// built with cgo. Common extensions are registered as aliases.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("flac", flac.Decoder{})
	registerOpus(r)

	r.Alias("wave", "wav")
	r.Alias("aif", "aiff")
	r.Alias("aifc", "aiff")
	r.Alias("oga", "ogg")

	return r
}
