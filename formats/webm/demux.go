// SPDX-License-Identifier: EPL-2.0

package webm

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/at-wat/ebml-go"
	"github.com/at-wat/ebml-go/webm"

	"github.com/ik5/audnorm/formats/opus"
)

const (
	trackTypeAudio = 2
	codecOpus      = "A_OPUS"
)

// track is a demuxed Opus track.
type track struct {
	head    opus.Head
	packets [][]byte
}

// demux reads the whole container and returns the packets of the first Opus
// audio track in presentation order. A stream cut short after the track
// list, as left by an interrupted recorder, yields what was read.
func demux(r io.Reader) (track, error) {
	var doc struct {
		Segment struct {
			Tracks  webm.Tracks    `ebml:"Tracks"`
			Cluster []webm.Cluster `ebml:"Cluster"`
		} `ebml:"Segment"`
	}

	err := ebml.Unmarshal(r, &doc)
	entries := doc.Segment.Tracks.TrackEntry
	if err != nil && !(errors.Is(err, io.ErrUnexpectedEOF) && len(entries) > 0) {
		return track{}, fmt.Errorf("%w: %w", ErrNotWebmStream, err)
	}

	entry, err := audioTrack(entries)
	if err != nil {
		return track{}, err
	}

	head, err := opus.ParseHead(entry.CodecPrivate)
	if err != nil {
		if !errors.Is(err, opus.ErrNotOpusStream) || entry.Audio == nil {
			return track{}, err
		}
		// no OpusHead; fall back to the track's audio settings
		head = opus.Head{Channels: int(entry.Audio.Channels), InputRate: int(entry.Audio.SamplingFrequency)}
		if head.Channels < 1 || head.Channels > 2 {
			return track{}, fmt.Errorf("%w: %d", opus.ErrUnsupportedChannels, head.Channels)
		}
	}

	type timed struct {
		at   int64
		data [][]byte
	}
	var blocks []timed
	add := func(cluster uint64, b ebml.Block) {
		if b.TrackNumber == entry.TrackNumber {
			blocks = append(blocks, timed{at: int64(cluster) + int64(b.Timecode), data: b.Data})
		}
	}
	for _, c := range doc.Segment.Cluster {
		for _, b := range c.SimpleBlock {
			add(c.Timecode, b)
		}
		for _, g := range c.BlockGroup {
			add(c.Timecode, g.Block)
		}
	}
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].at < blocks[j].at })

	t := track{head: head}
	for _, b := range blocks {
		// laced blocks carry several packets
		for _, p := range b.data {
			if len(p) > 0 {
				t.packets = append(t.packets, p)
			}
		}
	}

	return t, nil
}

func audioTrack(entries []webm.TrackEntry) (webm.TrackEntry, error) {
	var other string
	for _, e := range entries {
		if e.TrackType != trackTypeAudio {
			continue
		}
		if e.CodecID == codecOpus {
			return e, nil
		}
		if other == "" {
			other = e.CodecID
		}
	}

	if other != "" {
		return webm.TrackEntry{}, fmt.Errorf("%w: %s", ErrUnsupportedCodec, other)
	}
	return webm.TrackEntry{}, ErrNoAudioTrack
}
