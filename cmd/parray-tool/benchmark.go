// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/Fantom-foundation/parray/parray"
	"github.com/urfave/cli/v2"
)

var Benchmark = cli.Command{
	Action: withDiagnostics(benchmark),
	Name:   "benchmark",
	Usage:  "compares persistent array operations with copying plain slices",
	Flags: []cli.Flag{
		&lengthFlag,
		&numOperationsFlag,
		&seedFlag,
	},
}

var (
	numOperationsFlag = cli.IntFlag{
		Name:  "num-operations",
		Usage: "the number of operations timed per benchmark",
		Value: 1_000_000,
	}
)

type benchmarkConfig struct {
	length     int
	operations int
	seed       int64
}

type benchmarkResult struct {
	name       string
	operations int
	duration   time.Duration
}

func (r benchmarkResult) nsPerOp() float64 {
	if r.operations == 0 {
		return 0
	}
	return float64(r.duration.Nanoseconds()) / float64(r.operations)
}

func (r benchmarkResult) String() string {
	return fmt.Sprintf("%-28s %10d ops %12.1f ns/op", r.name, r.operations, r.nsPerOp())
}

// sink keeps benchmarked reads from being optimized away.
var sink uint64

func benchmark(context *cli.Context) error {
	config := benchmarkConfig{
		length:     context.Int(lengthFlag.Name),
		operations: context.Int(numOperationsFlag.Name),
		seed:       context.Int64(seedFlag.Name),
	}
	if config.length <= 0 {
		return fmt.Errorf("invalid array length %d", config.length)
	}
	if config.operations <= 0 {
		return fmt.Errorf("invalid number of operations %d", config.operations)
	}
	if config.seed == 0 {
		config.seed = time.Now().UnixNano()
	}
	fmt.Printf("Using seed: %d\n", config.seed)
	runBenchmarks(os.Stdout, config)
	return nil
}

func runBenchmarks(out io.Writer, config benchmarkConfig) []benchmarkResult {
	r := rand.New(rand.NewSource(config.seed))
	n := config.operations

	base := parray.New[uint64](config.length)
	plain := make([]uint64, config.length)

	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = r.Intn(config.length)
	}

	var results []benchmarkResult
	run := func(name string, op func(i int)) {
		start := time.Now()
		for i := 0; i < n; i++ {
			op(i)
		}
		res := benchmarkResult{name: name, operations: n, duration: time.Since(start)}
		fmt.Fprintln(out, res)
		results = append(results, res)
	}

	fmt.Fprintln(out, "---- IMMUTABLE UPDATE ----")
	run("parray.Array#Update", func(i int) {
		base.Update(indexes[i], uint64(i))
	})
	run("slice copy + set", func(i int) {
		clone := slices.Clone(plain)
		clone[indexes[i]] = uint64(i)
	})
	fmt.Fprintln(out)

	fmt.Fprintln(out, "---- READ ----")
	run("parray.Array#Get", func(i int) {
		value, _ := base.Get(indexes[i])
		sink += value
	})
	run("slice index", func(i int) {
		sink += plain[indexes[i]]
	})
	fmt.Fprintln(out)

	// Reading alternately the two most recent versions of a linear history
	// moves the materialized version back and forth by a single step.
	fmt.Fprintln(out, "---- LINEAR HISTORY ----")
	current := parray.New[uint64](config.length)
	previous := current
	run("update + read newest two", func(i int) {
		next, _ := current.Update(indexes[i], uint64(i))
		previous, current = current, next
		a, _ := previous.Get(indexes[i])
		b, _ := current.Get(indexes[i])
		sink += a + b
	})
	stats := current.GetStats()
	fmt.Fprintf(out, "Versions: %d, Reroots: %d, Flips: %d", stats.Versions, stats.Reroots, stats.Flips)
	if stats.Reroots > 0 {
		fmt.Fprintf(out, ", Flips per reroot: %.2f", float64(stats.Flips)/float64(stats.Reroots))
	}
	fmt.Fprintln(out)
	return results
}
