// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audnorm"
	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/internal/config"
	"github.com/ik5/audnorm/internal/sink"
)

type convertOptions struct {
	output       string
	format       string
	method       string
	workers      int
	skipExisting bool
}

func (a *app) convertCmd() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <file>...",
		Short: "Convert files to mono 16 kHz 16-bit WAV",
		Long: `Convert audio files to mono 16 kHz 16-bit PCM WAV.

Each input <dir>/<name>.<ext> is stored as <name>.wav; two inputs with the
same <name> are refused before anything is converted. The format is taken
from --format, then the leading bytes, then the file extension. A single
"-" input reads standard input.

Output goes to the directory given with -o, to standard output with -o -,
or to the configured S3 bucket when no -o is given.

Examples:
  audnorm convert -o out/ a.mp3 b.flac
  audnorm convert --method soxr -o - speech.ogg > speech.wav
  AUDNORM_S3_BUCKET=clips audnorm convert --skip-existing *.wav`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("method") {
				cfg.Method = opts.method
			}
			if flags.Changed("workers") {
				cfg.Workers = opts.workers
			}
			if flags.Changed("output") {
				cfg.Output.Dir = opts.output
				cfg.Output.S3.Bucket = ""
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return a.convert(cmd.Context(), cmd, cfg, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output directory, "-" for stdout`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format, overrides detection")
	cmd.Flags().StringVar(&opts.method, "method", "", "rate converter: cubic or soxr")
	cmd.Flags().IntVarP(&opts.workers, "workers", "j", 0, "files converted in parallel")
	cmd.Flags().BoolVar(&opts.skipExisting, "skip-existing", false, "skip inputs whose output already exists")

	return cmd
}

func (a *app) convert(ctx context.Context, cmd *cobra.Command, cfg config.Config, opts convertOptions, inputs []string) error {
	method, err := audio.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}

	if cfg.Output.S3.Bucket == "" && cfg.Output.Dir == "-" && len(inputs) > 1 {
		return errors.New("stdout output takes a single input")
	}
	if err := duplicateOutputs(inputs); err != nil {
		return err
	}

	dst, where, err := newSink(ctx, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	reg := audnorm.DefaultRegistry()
	conv := audnorm.NewConverter(audnorm.WithRegistry(reg), audnorm.WithMethod(method))

	a.logger.Debug("converting",
		slog.Int("files", len(inputs)),
		slog.String("method", method.String()),
		slog.Int("workers", cfg.Workers),
		slog.String("output", where),
	)

	j := &job{
		conv:   conv,
		reg:    reg,
		sink:   dst,
		stdin:  cmd.InOrStdin(),
		format: opts.format,
		skip:   opts.skipExisting,
		logger: a.logger,
	}

	errs := make([]error, len(inputs))

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			if err := j.run(ctx, in); err != nil {
				a.logger.Error("convert failed", slog.String("input", in), slog.Any("error", err))
				errs[i] = fmt.Errorf("%s: %w", in, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed: %w", failed, len(inputs), errors.Join(errs...))
	}

	return nil
}

// newSink picks the destination for cfg and describes it for logging.
func newSink(ctx context.Context, cfg config.Config, stdout io.Writer) (sink.Sink, string, error) {
	if s3 := cfg.Output.S3; s3.Bucket != "" {
		client, err := sink.NewS3Client(ctx, sink.S3Options{
			Region:    s3.Region,
			Endpoint:  s3.Endpoint,
			PathStyle: s3.PathStyle,
		})
		if err != nil {
			return nil, "", err
		}
		where := "s3://" + s3.Bucket
		if s3.Prefix != "" {
			where += "/" + s3.Prefix
		}
		return sink.NewS3(client, s3.Bucket, s3.Prefix), where, nil
	}

	if cfg.Output.Dir == "-" {
		return sink.NewWriter(stdout), "stdout", nil
	}

	d := sink.NewDir(cfg.Output.Dir)
	return d, d.Root(), nil
}

// job converts single inputs. It is shared by all workers.
type job struct {
	conv   *audnorm.Converter
	reg    *audio.Registry
	sink   sink.Sink
	stdin  io.Reader
	format string
	skip   bool
	logger *slog.Logger
}

func (j *job) run(ctx context.Context, input string) error {
	start := time.Now()
	name := outputName(input)

	if j.skip {
		ok, err := j.sink.Exists(ctx, name)
		if err != nil {
			return err
		}
		if ok {
			j.logger.Info("skipped", slog.String("input", input), slog.String("output", name))
			return nil
		}
	}

	r, closeFn, err := j.open(input)
	if err != nil {
		return err
	}
	defer closeFn()

	br := bufio.NewReader(r)
	format := j.format
	if format == "" {
		format = detectFormat(br, input, j.reg)
	}

	buf, format, err := j.conv.Decode(ctx, br, format)
	if err != nil {
		return err
	}

	out, err := j.conv.ConvertBuffer(ctx, buf)
	if err != nil {
		return err
	}

	if err := j.sink.Put(ctx, name, out); err != nil {
		return err
	}

	j.logger.Info("converted",
		slog.String("input", input),
		slog.String("format", format),
		slog.Int("sample_rate", buf.SampleRate),
		slog.Int("channels", buf.Channels),
		slog.Int("frames", buf.Frames()),
		slog.Duration("duration", buf.Duration()),
		slog.String("output", name),
		slog.Int("bytes", len(out)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

func (j *job) open(input string) (io.Reader, func(), error) {
	if input == "-" {
		return j.stdin, func() {}, nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
