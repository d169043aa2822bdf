// SPDX-License-Identifier: EPL-2.0

// Package flac decodes native FLAC streams through github.com/mewkiz/flac.
//
// Any bit depth the format allows (4 to 32) is scaled to float32 in [-1, 1].
// Frames are decoded one at a time, so memory use is bounded by the largest
// block size, not by the file length.
package flac
