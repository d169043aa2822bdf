// SPDX-License-Identifier: EPL-2.0

package webm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/at-wat/ebml-go"
	"github.com/at-wat/ebml-go/webm"

	"github.com/ik5/audnorm/formats/opus"
)

// opusHead builds an OpusHead packet with a 48 kHz input rate.
func opusHead(channels byte, preSkip uint16) []byte {
	h := []byte("OpusHead")
	return append(h, 1, channels, byte(preSkip), byte(preSkip>>8), 0x80, 0xBB, 0, 0, 0, 0, 0)
}

func opusTrack(number uint64, head []byte) webm.TrackEntry {
	return webm.TrackEntry{
		Name:         "Audio",
		TrackNumber:  number,
		TrackUID:     number,
		CodecID:      "A_OPUS",
		CodecPrivate: head,
		TrackType:    trackTypeAudio,
		Audio:        &webm.Audio{SamplingFrequency: 48000, Channels: 2},
	}
}

func block(track uint64, timecode int16, data string) ebml.Block {
	return ebml.Block{TrackNumber: track, Timecode: timecode, Keyframe: true, Data: [][]byte{[]byte(data)}}
}

// buildWebm marshals a segment the way a recorder lays it out.
func buildWebm(t *testing.T, entries []webm.TrackEntry, clusters []webm.Cluster) []byte {
	t.Helper()

	var doc struct {
		Segment struct {
			Tracks  webm.Tracks    `ebml:"Tracks"`
			Cluster []webm.Cluster `ebml:"Cluster"`
		} `ebml:"Segment"`
	}
	doc.Segment.Tracks.TrackEntry = entries
	doc.Segment.Cluster = clusters

	var buf bytes.Buffer
	if err := ebml.Marshal(&doc, &buf); err != nil {
		t.Fatalf("ebml.Marshal() error = %v", err)
	}
	return buf.Bytes()
}

func TestDemux(t *testing.T) {
	t.Parallel()

	video := webm.TrackEntry{TrackNumber: 1, TrackUID: 1, CodecID: "V_VP8", TrackType: 1}
	data := buildWebm(t,
		[]webm.TrackEntry{video, opusTrack(2, opusHead(2, 312))},
		[]webm.Cluster{
			{
				Timecode: 0,
				SimpleBlock: []ebml.Block{
					block(2, 20, "b"),
					block(1, 0, "video"),
					block(2, 0, "a"),
				},
			},
			{
				Timecode:   40,
				BlockGroup: []webm.BlockGroup{{Block: block(2, 0, "c")}},
			},
		},
	)

	tr, err := demux(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("demux() error = %v", err)
	}

	want := opus.Head{Channels: 2, PreSkip: 312, InputRate: 48000}
	if tr.head != want {
		t.Errorf("head = %+v, want %+v", tr.head, want)
	}

	var got []string
	for _, p := range tr.packets {
		got = append(got, string(p))
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("packets = %q, want [a b c]", got)
	}
}

func TestDemux_NoCodecPrivate(t *testing.T) {
	t.Parallel()

	entry := opusTrack(1, nil)
	entry.Audio = &webm.Audio{SamplingFrequency: 48000, Channels: 1}
	data := buildWebm(t, []webm.TrackEntry{entry}, []webm.Cluster{{SimpleBlock: []ebml.Block{block(1, 0, "x")}}})

	tr, err := demux(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("demux() error = %v", err)
	}
	if tr.head.Channels != 1 || tr.head.PreSkip != 0 || len(tr.packets) != 1 {
		t.Errorf("demux() = %+v", tr)
	}
}

func TestDemux_Errors(t *testing.T) {
	t.Parallel()

	vorbis := webm.TrackEntry{TrackNumber: 1, TrackUID: 1, CodecID: "A_VORBIS", TrackType: trackTypeAudio}
	video := webm.TrackEntry{TrackNumber: 1, TrackUID: 1, CodecID: "V_VP9", TrackType: 1}

	tests := []struct {
		name    string
		entries []webm.TrackEntry
		wantErr error
	}{
		{"vorbis track", []webm.TrackEntry{vorbis}, ErrUnsupportedCodec},
		{"video only", []webm.TrackEntry{video}, ErrNoAudioTrack},
		{"surround", []webm.TrackEntry{opusTrack(1, opusHead(6, 0))}, opus.ErrUnsupportedChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := demux(bytes.NewReader(buildWebm(t, tt.entries, nil)))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("demux() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := demux(bytes.NewReader([]byte("RIFF\x24\x00\x00\x00WAVEfmt "))); err == nil {
		t.Error("demux(wav) error = nil")
	}
}
