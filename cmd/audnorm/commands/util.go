// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/utils"
)

// outputName maps an input path to the stored object name: the base name
// with its extension replaced by .wav.
func outputName(input string) string {
	if input == "-" {
		return "stdin.wav"
	}
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return stem + ".wav"
}

// duplicateOutputs reports inputs that map to the same output name, which
// would otherwise overwrite each other's result.
func duplicateOutputs(inputs []string) error {
	seen := make(map[string]string, len(inputs))
	var errs []error
	for _, in := range inputs {
		name := outputName(in)
		if first, ok := seen[name]; ok {
			errs = append(errs, fmt.Errorf("%s and %s both write %s", first, in, name))
			continue
		}
		seen[name] = in
	}
	if len(errs) > 0 {
		return fmt.Errorf("duplicate output names: %w", errors.Join(errs...))
	}
	return nil
}

// formatFromExt returns the registry key matching the file extension, or ""
// when the extension is unknown.
func formatFromExt(path string, reg *audio.Registry) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return ""
	}
	if _, ok := reg.Get(ext); !ok {
		return ""
	}
	return ext
}

// detectFormat sniffs the leading bytes of br and falls back to the
// extension of path. It returns "" when neither is conclusive.
func detectFormat(br *bufio.Reader, path string, reg *audio.Registry) string {
	head, _ := br.Peek(audio.SniffLen)
	if f := audio.Sniff(head); f != "" {
		if _, ok := reg.Get(f); ok {
			return f
		}
	}
	return formatFromExt(path, reg)
}

// peak returns the largest absolute sample value.
func peak(samples []float32) float32 {
	var p float32
	for _, s := range samples {
		p = max(p, abs32(s))
	}
	return p
}

// pcmPeak is peak over 16-bit samples, scaled the way the encoder quantizes.
func pcmPeak(pcm []int16) float32 {
	var p float32
	for _, v := range pcm {
		p = max(p, abs32(utils.Int16ToFloat32(v)))
	}
	return p
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func formatPeak(p float32) string {
	if p == 0 {
		return "silence"
	}
	return fmt.Sprintf("%.4f (%.1f dBFS)", p, 20*math.Log10(float64(p)))
}
