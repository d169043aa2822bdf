// SPDX-License-Identifier: EPL-2.0

// Package webm decodes the Opus audio track of WebM and Matroska files, the
// container browsers produce with MediaRecorder.
//
// The container is read with github.com/at-wat/ebml-go. Blocks of the first
// A_OPUS track are put in timestamp order and each packet is decoded with
// libopus through gopkg.in/hraban/opus.v2, so the Decoder only exists in cgo
// builds. The track's OpusHead (CodecPrivate) gives the channel count and
// the pre-skip dropped from the start of the output.
//
// Output is always 48 kHz float32, mono or stereo.
package webm
