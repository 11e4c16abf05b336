// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/structviz"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var benchConfig struct {
	kinds       string
	ops         int
	concurrency int
	seed        uint64
}

const (
	minLatency = 10 * time.Nanosecond
	maxLatency = 10 * time.Second
)

var benchCmd = &cobra.Command{
	Use:   "bench (flags)",
	Short: "run random command scripts and report command latencies",
	Long: `
Run random command scripts against every selected structure kind without
animation delays and report the latency distribution of the commands.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds, err := parseKinds(benchConfig.kinds)
		if err != nil {
			return err
		}
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		opts.Clock = instantClock{}
		opts.Logger = structviz.NoopLogger
		seed := benchConfig.seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		res, err := runBench(cmd.Context(), kinds, opts, seed, benchConfig.ops, benchConfig.concurrency)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seed: %d\n", seed)
		writeBenchResults(cmd.OutOrStdout(), res)
		return nil
	},
}

func parseKinds(s string) ([]structviz.Kind, error) {
	if s == "all" {
		return structviz.Kinds(), nil
	}
	var res []structviz.Kind
	for _, name := range strings.Split(s, ",") {
		k, err := structviz.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		res = append(res, k)
	}
	return res, nil
}

type benchResult struct {
	kind    structviz.Kind
	hist    *hdrhistogram.Histogram
	metrics structviz.Metrics
}

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 2)
}

// runBench runs concurrency workers per kind. Every worker owns a structure
// and runs a random script of n commands on it.
func runBench(
	ctx context.Context, kinds []structviz.Kind, opts *structviz.Options, seed uint64, n, concurrency int,
) ([]benchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	type worker struct {
		hist    *hdrhistogram.Histogram
		metrics structviz.Metrics
	}
	workers := make([][]worker, len(kinds))
	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		workers[i] = make([]worker, concurrency)
		for j := range workers[i] {
			w := &workers[i][j]
			w.hist = newHistogram()
			rng := rand.New(rand.NewPCG(seed, uint64(i*concurrency+j)))
			g.Go(func() error {
				s := structviz.New(kind, opts)
				for _, line := range structviz.RandomScript(kind, rng, n) {
					if err := ctx.Err(); err != nil {
						return err
					}
					start := crtime.NowMono()
					if err := structviz.Exec(s, line); err != nil {
						return err
					}
					if err := w.hist.RecordValue(start.Elapsed().Nanoseconds()); err != nil {
						return err
					}
				}
				w.metrics = s.Metrics()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := make([]benchResult, len(kinds))
	for i, kind := range kinds {
		res[i] = benchResult{kind: kind, hist: newHistogram()}
		for _, w := range workers[i] {
			res[i].hist.Merge(w.hist)
			res[i].metrics.Ops.Completed += w.metrics.Ops.Completed
			res[i].metrics.Ops.Unchanged += w.metrics.Ops.Unchanged
			res[i].metrics.Ops.Rejected += w.metrics.Ops.Rejected
			res[i].metrics.Waits += w.metrics.Waits
			res[i].metrics.AnimationTime += w.metrics.AnimationTime
		}
	}
	return res, nil
}

func writeBenchResults(w io.Writer, res []benchResult) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"kind", "ops", "completed", "unchanged", "p50(µs)", "p95(µs)", "p99(µs)", "max(µs)"})
	us := func(h *hdrhistogram.Histogram, q float64) string {
		return fmt.Sprintf("%.1f", float64(h.ValueAtQuantile(q))/1e3)
	}
	for _, r := range res {
		t.Append([]string{
			r.kind.String(),
			fmt.Sprint(r.hist.TotalCount()),
			fmt.Sprint(r.metrics.Ops.Completed),
			fmt.Sprint(r.metrics.Ops.Unchanged),
			us(r.hist, 50),
			us(r.hist, 95),
			us(r.hist, 99),
			us(r.hist, 100),
		})
	}
	t.Render()
}
