// SPDX-License-Identifier: EPL-2.0

// Command audnorm converts audio files to mono 16 kHz 16-bit PCM WAV.
//
// Usage:
//
//	audnorm [--config file] [--log-level level] <command> [args]
//
// Commands:
//
//	convert  - normalize files into a directory, stdout or an S3 bucket
//	inspect  - print stream properties of a file
//	formats  - list the decoders compiled in
//	config   - print the effective configuration
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/audnorm/cmd/audnorm/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
