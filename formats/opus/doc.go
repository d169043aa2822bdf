// SPDX-License-Identifier: EPL-2.0

// Package opus decodes Ogg Opus through gopkg.in/hraban/opus.v2, which binds
// libopus and libopusfile. The Decoder only exists in cgo builds; without
// cgo the package offers its sentinel errors and nothing registers "opus".
//
// Output is always 48 kHz float32, mono or stereo as declared by the
// stream's OpusHead packet.
package opus
