// SPDX-License-Identifier: EPL-2.0

//go:build cgo

package audnorm

import (
	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/formats/opus"
	"github.com/ik5/audnorm/formats/webm"
)

// registerOpus adds the libopus backed decoders: Ogg Opus and WebM.
func registerOpus(r *audio.Registry) {
	r.Register("opus", opus.Decoder{})
	r.Register("webm", webm.Decoder{})
	r.Alias("weba", "webm")
	r.Alias("mka", "webm")
}
