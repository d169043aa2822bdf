// SPDX-License-Identifier: EPL-2.0

package opus

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
)

// SampleRate is the rate libopus always decodes at here.
const SampleRate = 48000

// headPeek is how far into the stream the identification header is looked
// for. It sits in the first Ogg page, right after the 27-byte page header and
// the segment table.
const headPeek = 512

// headLen is the size of an OpusHead packet for mapping family 0.
const headLen = 19

var opusHead = []byte("OpusHead")

// Head is the part of the OpusHead identification packet the decoders use.
type Head struct {
	Channels int
	// PreSkip is the number of 48 kHz samples per channel to drop from the
	// start of the decoded output.
	PreSkip   int
	InputRate int
}

// ParseHead reads an OpusHead packet, as found in the first Ogg page or in
// a Matroska track's CodecPrivate. Only mono and stereo streams are
// accepted; multichannel mapping families are not read.
func ParseHead(b []byte) (Head, error) {
	if len(b) < headLen || !bytes.HasPrefix(b, opusHead) {
		return Head{}, ErrNotOpusStream
	}

	h := Head{
		Channels:  int(b[9]),
		PreSkip:   int(binary.LittleEndian.Uint16(b[10:12])),
		InputRate: int(binary.LittleEndian.Uint32(b[12:16])),
	}
	if h.Channels < 1 || h.Channels > 2 {
		return Head{}, fmt.Errorf("%w: %d", ErrUnsupportedChannels, h.Channels)
	}

	return h, nil
}

// peekChannels reads the output channel count from the OpusHead packet
// without consuming input.
func peekChannels(br *bufio.Reader) (int, error) {
	head, _ := br.Peek(headPeek)
	if !bytes.HasPrefix(head, []byte("OggS")) {
		return 0, ErrNotOpusStream
	}

	i := bytes.Index(head, opusHead)
	if i < 0 {
		return 0, ErrNotOpusStream
	}

	h, err := ParseHead(head[i:])
	if err != nil {
		return 0, err
	}

	return h.Channels, nil
}
