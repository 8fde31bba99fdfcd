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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-ordering/order"
	"github.com/ajroetker/go-ordering/order/contrib/search"
)

type searchOptions struct {
	target   int
	relative bool
	strict   bool
	files    []string
}

func newSearchCmd() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search --target N [values...]",
		Short: "Binary search a sorted sequence of integers",
		Long: `Prints the index of an element equal to --target, or "not found".

The input must already be sorted ascending. Without --strict an unsorted
input gives an unspecified answer; with --strict it is rejected.
--relative reports the index within the narrowed search window instead of
the input (legacy behavior).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.target, "target", "t", 0, "Value to search for")
	cmd.Flags().BoolVar(&opts.relative, "relative", false, "Report the window-relative index")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject unsorted input")
	cmd.Flags().StringSliceVarP(&opts.files, "file", "f", nil, "Input files (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("relative", "strict")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func runSearch(cmd *cobra.Command, opts *searchOptions, args []string) error {
	data, err := loadInputs(cmd.Context(), opts.files, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var idx int
	switch {
	case opts.strict:
		idx, err = search.BinarySearchStrict(data, opts.target)
		if err != nil {
			return err
		}
	case opts.relative:
		idx = search.BinarySearchRelative(data, opts.target)
	default:
		if i := order.FirstUnsorted(data); i != order.NotFound {
			logger.Warn("input is not sorted, result is unspecified", zap.Int("index", i))
		}
		idx = search.BinarySearch(data, opts.target)
	}
	logger.Debug("searched input",
		zap.Int("target", opts.target),
		zap.Int("values", len(data)),
		zap.Int("index", idx))

	out := cmd.OutOrStdout()
	if idx == order.NotFound {
		_, err = fmt.Fprintln(out, "not found")
		return err
	}
	_, err = fmt.Fprintln(out, idx)
	return err
}
