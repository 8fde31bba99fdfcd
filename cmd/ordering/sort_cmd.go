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
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sortOptions struct {
	algo  string
	seed  uint64
	files []string
}

func newSortCmd() *cobra.Command {
	opts := &sortOptions{}

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort a sequence of integers in ascending order",
		Long: `Reads integers from arguments, --file inputs or stdin and prints them in
ascending order.

Algorithms:
  - auto: insertion sort for short inputs, quicksort otherwise
  - insertion: stable insertion sort
  - quick: randomized three-way quicksort (--seed makes pivots reproducible)
  - stdlib: slices.Sort, for comparison`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validAlgorithm(opts.algo, sortAlgorithms)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.algo, "algo", "a", algoAuto, "Algorithm: "+strings.Join(sortAlgorithms, "|"))
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for quicksort pivots (0 picks a random seed)")
	cmd.Flags().StringSliceVarP(&opts.files, "file", "f", nil, "Input files (repeatable)")
	return cmd
}

func runSort(cmd *cobra.Command, opts *sortOptions, args []string) error {
	data, err := loadInputs(cmd.Context(), opts.files, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	start := time.Now()
	if err := sortWith(opts.algo, data, pivotSource(opts.seed)); err != nil {
		return err
	}
	logger.Debug("sorted input",
		zap.String("algo", opts.algo),
		zap.Int("values", len(data)),
		zap.Duration("elapsed", time.Since(start)))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), formatInts(data))
	return err
}
