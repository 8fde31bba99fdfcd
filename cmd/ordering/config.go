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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
)

// Dataset shapes the bench harness can generate.
const (
	distRandom   = "random"
	distSorted   = "sorted"
	distReversed = "reversed"
	distEqual    = "equal"
	distFew      = "few" // few distinct values, many duplicates
)

var (
	benchAlgorithms    = []string{algoInsertion, algoQuick, algoAuto, algoStdlib, algoBatch}
	benchDistributions = []string{distRandom, distSorted, distReversed, distEqual, distFew}
)

// BenchConfig describes the benchmark matrix: every algorithm is run on
// every distribution at every size, Repeats times.
type BenchConfig struct {
	Sizes          []int    `yaml:"sizes" json:"sizes"`
	Algorithms     []string `yaml:"algorithms" json:"algorithms"`
	Distributions  []string `yaml:"distributions" json:"distributions"`
	Repeats        int      `yaml:"repeats" json:"repeats"`
	Seed           uint64   `yaml:"seed" json:"seed"`
	Workers        int      `yaml:"workers" json:"workers"`
	BatchSize      int      `yaml:"batch_size" json:"batch_size"`
	InsertionLimit int      `yaml:"insertion_limit" json:"insertion_limit"`
}

// DefaultBenchConfig returns the matrix used when no config file is given.
func DefaultBenchConfig() BenchConfig {
	return BenchConfig{
		Sizes:          []int{10, 100, 1000, 10000},
		Algorithms:     []string{algoInsertion, algoQuick, algoAuto, algoStdlib},
		Distributions:  []string{distRandom, distSorted, distReversed, distEqual},
		Repeats:        5,
		Seed:           1,
		Workers:        0,
		BatchSize:      16,
		InsertionLimit: 20000,
	}
}

// Validate rejects configs the harness cannot run.
func (c BenchConfig) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("bench config: no sizes")
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("bench config: negative size %d", n)
		}
	}
	if c.Repeats < 1 {
		return fmt.Errorf("bench config: repeats must be >= 1, got %d", c.Repeats)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("bench config: batch_size must be >= 1, got %d", c.BatchSize)
	}
	for _, a := range c.Algorithms {
		if err := validAlgorithm(a, benchAlgorithms); err != nil {
			return fmt.Errorf("bench config: %w", err)
		}
	}
	for _, d := range c.Distributions {
		if !slices.Contains(benchDistributions, d) {
			return fmt.Errorf("bench config: unknown distribution %q (want one of %s)", d, strings.Join(benchDistributions, ", "))
		}
	}
	return nil
}

// LoadBenchConfig reads a bench config, picking the decoder from the file
// extension (.yaml, .yml or .toml). An empty path or a missing file yields
// DefaultBenchConfig.
func LoadBenchConfig(path string) (BenchConfig, error) {
	if path == "" {
		return DefaultBenchConfig(), nil
	}

	var (
		cfg BenchConfig
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = loadYAMLConfig(path)
	case ".toml":
		cfg, err = loadTOMLConfig(path)
	default:
		return BenchConfig{}, fmt.Errorf("load bench config: unsupported extension %q", ext)
	}
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("config file not found, using default config", zap.String("path", path))
		return DefaultBenchConfig(), nil
	}
	if err != nil {
		return BenchConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BenchConfig{}, err
	}
	return cfg, nil
}

// loadYAMLConfig decodes over the defaults, so omitted keys keep their
// default values.
func loadYAMLConfig(path string) (BenchConfig, error) {
	cfg := DefaultBenchConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return BenchConfig{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BenchConfig{}, fmt.Errorf("load bench config: %w", err)
	}
	return cfg, nil
}

type tomlBenchConfig struct {
	Sizes          []int    `toml:"sizes"`
	Algorithms     []string `toml:"algorithms"`
	Distributions  []string `toml:"distributions"`
	Repeats        int      `toml:"repeats"`
	Seed           int64    `toml:"seed"`
	Workers        int      `toml:"workers"`
	BatchSize      int      `toml:"batch_size"`
	InsertionLimit int      `toml:"insertion_limit"`
}

func loadTOMLConfig(path string) (BenchConfig, error) {
	cfg := DefaultBenchConfig()

	if _, err := os.Stat(path); err != nil {
		return BenchConfig{}, err
	}

	var raw tomlBenchConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return BenchConfig{}, fmt.Errorf("load bench config: %w", err)
	}

	if meta.IsDefined("sizes") {
		cfg.Sizes = raw.Sizes
	}
	if meta.IsDefined("algorithms") {
		cfg.Algorithms = normalizeNames(raw.Algorithms)
	}
	if meta.IsDefined("distributions") {
		cfg.Distributions = normalizeNames(raw.Distributions)
	}
	if meta.IsDefined("repeats") {
		cfg.Repeats = raw.Repeats
	}
	if meta.IsDefined("seed") {
		if raw.Seed < 0 {
			return BenchConfig{}, fmt.Errorf("load bench config: negative seed %d", raw.Seed)
		}
		cfg.Seed = uint64(raw.Seed)
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("batch_size") {
		cfg.BatchSize = raw.BatchSize
	}
	if meta.IsDefined("insertion_limit") {
		cfg.InsertionLimit = raw.InsertionLimit
	}
	return cfg, nil
}

func normalizeNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, name := range in {
		v := strings.ToLower(strings.TrimSpace(name))
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
