// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audnorm"
	"github.com/ik5/audnorm/formats/wav"
)

func (a *app) inspectCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print stream properties of an audio file",
		Long: `Decode a file and print its format, sample rate, channels, length and
peak level. Canonical 44-byte-header WAV files also get their header fields
and the peak of the raw 16-bit data listed, which makes inspect useful for
checking convert output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			reg := audnorm.DefaultRegistry()
			br := bufio.NewReader(bytes.NewReader(data))
			if format == "" {
				format = detectFormat(br, path, reg)
			}

			conv := audnorm.NewConverter(audnorm.WithRegistry(reg))
			buf, used, err := conv.Decode(cmd.Context(), br, format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:        %s\n", path)
			fmt.Fprintf(out, "format:      %s\n", used)
			fmt.Fprintf(out, "sample rate: %d Hz\n", buf.SampleRate)
			fmt.Fprintf(out, "channels:    %d\n", buf.Channels)
			fmt.Fprintf(out, "frames:      %d\n", buf.Frames())
			fmt.Fprintf(out, "duration:    %s\n", buf.Duration())
			fmt.Fprintf(out, "peak:        %s\n", formatPeak(peak(buf.Samples)))

			if h, err := wav.ParseHeader(data); err == nil {
				fmt.Fprintf(out, "wav header:  %d-bit, format %d, block align %d, %d data bytes\n",
					h.BitsPerSample, h.AudioFormat, h.BlockAlign, h.DataSize)
				if pcm, err := wav.Buffer(data).PCM(); err == nil {
					fmt.Fprintf(out, "pcm peak:    %s\n", formatPeak(pcmPeak(pcm)))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format, overrides detection")

	return cmd
}
