// SPDX-License-Identifier: EPL-2.0

package audio

import "testing"

func TestSniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		head []byte
		want string
	}{
		{"wav", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), "wav"},
		{"aiff", []byte("FORM\x00\x00\x00\x00AIFFCOMM"), "aiff"},
		{"aifc", []byte("FORM\x00\x00\x00\x00AIFCFVER"), "aiff"},
		{"flac", []byte("fLaC\x00\x00\x00\x22"), "flac"},
		{"vorbis", []byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00\x00\x00\x01vorbis"), "ogg"},
		{"opus", []byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00\x00\x00OpusHead\x01\x02"), "opus"},
		{"ogg unknown", []byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00\x00\x00Speex   "), ""},
		{"webm", []byte{0x1A, 0x45, 0xDF, 0xA3, 0x9F, 0x42, 0x86, 0x81, 0x01}, "webm"},
		{"id3", []byte("ID3\x04\x00\x00"), "mp3"},
		{"mpeg sync", []byte{0xFF, 0xFB, 0x90, 0x64}, "mp3"},
		{"riff not wave", []byte("RIFF\x24\x00\x00\x00AVI LIST"), ""},
		{"short", []byte("RIF"), ""},
		{"empty", nil, ""},
		{"text", []byte("hello world"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sniff(tt.head); got != tt.want {
				t.Errorf("Sniff(%q) = %q, want %q", tt.head, got, tt.want)
			}
		})
	}
}
