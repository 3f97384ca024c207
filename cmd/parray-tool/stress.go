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
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/Fantom-foundation/parray/common/interrupt"
	"github.com/Fantom-foundation/parray/parray"
	"github.com/urfave/cli/v2"
)

var Stress = cli.Command{
	Action: withDiagnostics(stress),
	Name:   "stress",
	Usage:  "runs random operations on a tree of versions and checks every result against plain slices",
	Flags: []cli.Flag{
		&lengthFlag,
		&numStepsFlag,
		&maxVersionsFlag,
		&reportIntervalFlag,
		&seedFlag,
	},
}

var (
	numStepsFlag = cli.IntFlag{
		Name:  "num-steps",
		Usage: "the number of random operations to perform",
		Value: 10_000_000,
	}
	maxVersionsFlag = cli.IntFlag{
		Name:  "max-versions",
		Usage: "the maximum number of versions checked against a shadow copy",
		Value: 1000,
	}
)

type stressConfig struct {
	length         int
	steps          int
	maxVersions    int
	reportInterval int
	seed           int64
}

// trackedVersion is a version of an array with a plain copy of the
// elements it is expected to contain.
type trackedVersion struct {
	array  *parray.Array[uint64]
	shadow []uint64
}

func stress(context *cli.Context) error {
	config := stressConfig{
		length:         context.Int(lengthFlag.Name),
		steps:          context.Int(numStepsFlag.Name),
		maxVersions:    context.Int(maxVersionsFlag.Name),
		reportInterval: context.Int(reportIntervalFlag.Name),
		seed:           context.Int64(seedFlag.Name),
	}
	if config.seed == 0 {
		config.seed = time.Now().UnixNano()
	}
	log := NewLog("stress")
	log.Printf("Using seed: %d", config.seed)
	ctx, stop := interrupt.Register(context.Context)
	defer stop()
	return runStress(ctx, log, config)
}

func runStress(ctx context.Context, log *Log, config stressConfig) error {
	if config.length <= 0 {
		return fmt.Errorf("invalid array length %d", config.length)
	}
	if config.maxVersions <= 0 {
		return fmt.Errorf("invalid maximum number of versions %d", config.maxVersions)
	}
	r := rand.New(rand.NewSource(config.seed))
	versions := []trackedVersion{{
		array:  parray.New[uint64](config.length),
		shadow: make([]uint64, config.length),
	}}

	progress := log.NewProgressTracker("steps", config.steps, config.reportInterval)
	for step := 0; step < config.steps; step++ {
		if step%1024 == 0 {
			if err := interrupt.Check(ctx); err != nil {
				return fmt.Errorf("stress test stopped after %d steps: %w", step, err)
			}
		}

		// Prefer the most recent version to grow long branches.
		pos := len(versions) - 1
		if r.Intn(2) == 0 {
			pos = r.Intn(len(versions))
		}
		cur := versions[pos]

		switch op := r.Intn(16); {
		case op < 8:
			index, value := r.Intn(config.length), r.Uint64()
			next, err := cur.array.Update(index, value)
			if err != nil {
				return fmt.Errorf("step %d: failed to update index %d: %w", step, index, err)
			}
			shadow := slices.Clone(cur.shadow)
			shadow[index] = value
			versions = append(versions, trackedVersion{array: next, shadow: shadow})
		case op < 14:
			index := r.Intn(config.length)
			got, err := cur.array.Get(index)
			if err != nil {
				return fmt.Errorf("step %d: failed to read index %d: %w", step, index, err)
			}
			if want := cur.shadow[index]; got != want {
				return fmt.Errorf("step %d: unexpected value at index %d, wanted %d, got %d", step, index, want, got)
			}
		case op < 15:
			if got := cur.array.Snapshot(); !slices.Equal(got, cur.shadow) {
				return fmt.Errorf("step %d: unexpected snapshot, wanted %v, got %v", step, cur.shadow, got)
			}
		default:
			index := config.length + r.Intn(config.length)
			if _, err := cur.array.Get(index); !errors.Is(err, parray.ErrIndexOutOfRange) {
				return fmt.Errorf("step %d: expected out of range error for index %d, got %v", step, index, err)
			}
		}

		// Forget a random version other than the newest to bound memory of
		// the shadow copies.
		if len(versions) > config.maxVersions {
			drop := r.Intn(len(versions) - 1)
			versions[drop] = versions[len(versions)-2]
			versions[len(versions)-2] = versions[len(versions)-1]
			versions = versions[:len(versions)-1]
		}
		progress.Step(1)
	}

	stats := versions[len(versions)-1].array.GetStats()
	log.Printf("Completed %d steps on %d versions, %d reroots with %d flips", config.steps, stats.Versions, stats.Reroots, stats.Flips)
	return nil
}
