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

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-ordering/order"
	"github.com/ajroetker/go-ordering/order/contrib/sort"
	"github.com/ajroetker/go-ordering/order/contrib/workerpool"
)

// BenchResult is the timing of one (algorithm, distribution, size) case.
type BenchResult struct {
	Algorithm    string        `json:"algorithm"`
	Distribution string        `json:"distribution"`
	Size         int           `json:"size"`
	Repeats      int           `json:"repeats"`
	Min          time.Duration `json:"min_ns"`
	Mean         time.Duration `json:"mean_ns"`
	NsPerElem    float64       `json:"ns_per_elem"`
}

// BenchReport is the full output of a bench run.
type BenchReport struct {
	Host    order.HostInfo `json:"host"`
	Config  BenchConfig    `json:"config"`
	Results []BenchResult  `json:"results"`
	Skipped []string       `json:"skipped,omitempty"`
}

type benchOptions struct {
	configPath string
	json       bool
}

func newBenchCmd() *cobra.Command {
	opts := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the sorting algorithms over a matrix of inputs",
		Long: `Runs every configured algorithm on every distribution and size, checks
that each output is sorted, and reports the fastest and mean time per case.

The matrix comes from --config (YAML or TOML, chosen by extension) or from
built-in defaults. The "batch" algorithm sorts batch_size copies of the
input at once on a worker pool.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadBenchConfig(opts.configPath)
			if err != nil {
				return err
			}
			report, err := runBench(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSONReport(cmd.OutOrStdout(), report)
			}
			return writeTableReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Bench config file (.yaml, .yml or .toml)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the report as JSON")
	return cmd
}

// generate builds a dataset of n values with the given shape.
func generate(dist string, n int, r *rand.Rand) []int {
	switch dist {
	case distSorted:
		return lo.Range(n)
	case distReversed:
		return lo.Map(lo.Range(n), func(i int, _ int) int { return n - i })
	case distEqual:
		return lo.Times(n, func(int) int { return 7 })
	case distFew:
		return lo.Times(n, func(int) int { return r.IntN(8) })
	default:
		return lo.Times(n, func(int) int { return r.IntN(1 << 30) })
	}
}

// runBench executes the matrix in cfg. It stops early when ctx is done.
func runBench(ctx context.Context, cfg BenchConfig) (BenchReport, error) {
	if err := cfg.Validate(); err != nil {
		return BenchReport{}, err
	}

	report := BenchReport{Host: order.Host(), Config: cfg}
	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	var pool *workerpool.Pool
	if slices.Contains(cfg.Algorithms, algoBatch) {
		pool = workerpool.New(cfg.Workers)
		defer pool.Close()
	}

	logger.Info("starting bench",
		zap.Stringer("host", report.Host),
		zap.Ints("sizes", cfg.Sizes),
		zap.Strings("algorithms", cfg.Algorithms),
		zap.Strings("distributions", cfg.Distributions))

	for _, dist := range cfg.Distributions {
		for _, n := range cfg.Sizes {
			ref := generate(dist, n, r)
			for _, algo := range cfg.Algorithms {
				if err := ctx.Err(); err != nil {
					return report, err
				}
				if algo == algoInsertion && cfg.InsertionLimit > 0 && n > cfg.InsertionLimit {
					name := fmt.Sprintf("%s/%s/%d", algo, dist, n)
					logger.Debug("skipping case above insertion limit", zap.String("case", name))
					report.Skipped = append(report.Skipped, name)
					continue
				}

				res, err := benchCase(algo, dist, ref, cfg, pool, r)
				if err != nil {
					return report, err
				}
				logger.Debug("case done",
					zap.String("algo", algo),
					zap.String("dist", dist),
					zap.Int("size", n),
					zap.Duration("min", res.Min))
				report.Results = append(report.Results, res)
			}
		}
	}
	return report, nil
}

// benchCase times one algorithm on ref and verifies every output.
func benchCase(algo, dist string, ref []int, cfg BenchConfig, pool *workerpool.Pool, r *rand.Rand) (BenchResult, error) {
	res := BenchResult{Algorithm: algo, Distribution: dist, Size: len(ref), Repeats: cfg.Repeats}

	copies := 1
	if algo == algoBatch {
		copies = cfg.BatchSize
	}
	batch := make([][]int, copies)
	for i := range batch {
		batch[i] = make([]int, len(ref))
	}

	var total time.Duration
	for rep := range cfg.Repeats {
		for i := range batch {
			copy(batch[i], ref)
		}

		start := time.Now()
		if algo == algoBatch {
			sort.SortBatch(pool, batch)
		} else if err := sortWith(algo, batch[0], r); err != nil {
			return res, err
		}
		elapsed := time.Since(start)

		for i := range batch {
			if bad := order.FirstUnsorted(batch[i]); bad != order.NotFound {
				return res, fmt.Errorf("bench %s/%s/%d: output unsorted at index %d", algo, dist, len(ref), bad)
			}
		}

		total += elapsed
		if rep == 0 || elapsed < res.Min {
			res.Min = elapsed
		}
	}

	res.Mean = total / time.Duration(cfg.Repeats)
	if elems := len(ref) * copies; elems > 0 {
		res.NsPerElem = float64(res.Min.Nanoseconds()) / float64(elems)
	}
	return res, nil
}

func writeJSONReport(w io.Writer, report BenchReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeTableReport(w io.Writer, report BenchReport) error {
	fmt.Fprintf(w, "host: %s\n\n", report.Host)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "algorithm\tdistribution\tsize\tmin\tmean\tns/elem\t")
	for _, res := range report.Results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%.2f\t\n",
			res.Algorithm, res.Distribution, res.Size, res.Min, res.Mean, res.NsPerElem)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, name := range report.Skipped {
		fmt.Fprintf(w, "skipped: %s\n", name)
	}
	return nil
}
