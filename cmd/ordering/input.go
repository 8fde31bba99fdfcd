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
	"os"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// parseInts splits text on whitespace and commas and parses every token as
// a base-10 integer. source names the input in error messages.
func parseInts(text, source string) ([]int, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%s: token %d %q: %w", source, i, tok, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// readInts reads all of r and parses it with parseInts.
func readInts(r io.Reader, source string) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return parseInts(string(data), source)
}

// loadInputs gathers the sequence for a command: every file in files, in
// order, followed by the positional args. Files are read concurrently.
// When neither files nor args are given the sequence is read from stdin.
func loadInputs(ctx context.Context, files, args []string, stdin io.Reader) ([]int, error) {
	if len(files) == 0 && len(args) == 0 {
		return readInts(stdin, "stdin")
	}

	parts := make([][]int, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()

			vals, err := readInts(f, path)
			if err != nil {
				return err
			}
			parts[i] = vals
			logger.Debug("loaded input file", zap.String("path", path), zap.Int("values", len(vals)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fromArgs, err := parseInts(strings.Join(args, " "), "arguments")
	if err != nil {
		return nil, err
	}

	var out []int
	for _, p := range parts {
		out = append(out, p...)
	}
	return append(out, fromArgs...), nil
}

// formatInts renders values space separated, the inverse of parseInts.
func formatInts(values []int) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
