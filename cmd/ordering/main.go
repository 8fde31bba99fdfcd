// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ordering sorts, searches and benchmarks integer sequences with the
// go-ordering algorithms.
//
// Usage:
//
//	ordering sort 5 2 4 6 1 3                  # prints 1 2 3 4 5 6
//	ordering sort --algo quick --file data.txt
//	ordering search --target 9001 --file fixture.txt
//	ordering bench --config bench.yaml --json
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose bool
	logJSON bool
}

// logger is replaced in the root command's PersistentPreRunE.
var logger = zap.NewNop()

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "ordering",
		Short: "Sort, search and benchmark integer sequences",
		Long: `ordering exposes the go-ordering algorithms on the command line.

Sequences are read from arguments, from files (--file) or from stdin.
Values may be separated by whitespace or commas.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(opts)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Emit logs as JSON")

	root.AddCommand(newSortCmd(), newSearchCmd(), newBenchCmd())
	return root
}

// newLogger builds a production zap logger writing to stderr, so command
// output on stdout stays machine readable.
func newLogger(opts *globalOptions) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.Sampling = nil
	if !opts.logJSON {
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if opts.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
