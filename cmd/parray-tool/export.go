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
	"time"

	"github.com/Fantom-foundation/parray/archive"
	"github.com/Fantom-foundation/parray/archive/ldb"
	"github.com/Fantom-foundation/parray/common/interrupt"
	"github.com/Fantom-foundation/parray/parray"
	"github.com/urfave/cli/v2"
)

var Export = cli.Command{
	Action:    withDiagnostics(export),
	Name:      "export",
	Usage:     "archives versions of a random update history into a LevelDB directory",
	ArgsUsage: "<directory>",
	Flags: []cli.Flag{
		&lengthFlag,
		&numVersionsFlag,
		&archiveIntervalFlag,
		&reportIntervalFlag,
		&seedFlag,
	},
}

var (
	numVersionsFlag = cli.IntFlag{
		Name:  "num-versions",
		Usage: "the number of versions of the update history",
		Value: 100_000,
	}
	archiveIntervalFlag = cli.IntFlag{
		Name:  "archive-interval",
		Usage: "the number of versions between two archived versions",
		Value: 100,
	}
)

type exportConfig struct {
	length         int
	versions       int
	interval       int
	reportInterval int
	seed           int64
}

func export(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing target directory")
	}
	dir := context.Args().Get(0)

	config := exportConfig{
		length:         context.Int(lengthFlag.Name),
		versions:       context.Int(numVersionsFlag.Name),
		interval:       context.Int(archiveIntervalFlag.Name),
		reportInterval: context.Int(reportIntervalFlag.Name),
		seed:           context.Int64(seedFlag.Name),
	}
	if config.seed == 0 {
		config.seed = time.Now().UnixNano()
	}

	log := NewLog("export")
	log.Printf("Using seed: %d", config.seed)
	log.Printf("Opening archive in %s ...", dir)
	target, err := ldb.OpenArchive[uint64](dir, archive.RlpCodec[uint64]{}, ldb.Options{})
	if err != nil {
		return err
	}

	ctx, stop := interrupt.Register(context.Context)
	defer stop()
	err = exportHistory(ctx, log, target, config)
	return errors.Join(err, target.Close())
}

// exportHistory produces a linear history of random updates and adds every
// version selected by the configured interval to the given archive. Version
// numbers continue after the last version already present in the archive.
func exportHistory(ctx context.Context, log *Log, target archive.Archive[uint64], config exportConfig) error {
	if config.length <= 0 {
		return fmt.Errorf("invalid array length %d", config.length)
	}
	if config.interval <= 0 {
		return fmt.Errorf("invalid archive interval %d", config.interval)
	}

	first := uint64(0)
	last, found, err := target.GetLastVersion()
	if err != nil {
		return err
	}
	if found {
		first = last + 1
	}

	r := rand.New(rand.NewSource(config.seed))
	array := parray.New[uint64](config.length)
	progress := log.NewProgressTracker("versions", config.versions, config.reportInterval)
	archived := 0
	for i := 0; i < config.versions; i++ {
		if err := interrupt.Check(ctx); err != nil {
			return fmt.Errorf("export stopped after %d versions: %w", i, err)
		}
		array, err = array.Update(r.Intn(config.length), r.Uint64())
		if err != nil {
			return err
		}
		if i%config.interval == 0 {
			if err := target.Add(first+uint64(i), array); err != nil {
				return fmt.Errorf("failed to archive version %d: %w", first+uint64(i), err)
			}
			archived++
		}
		progress.Step(1)
	}
	log.Printf("Archived %d of %d versions", archived, config.versions)
	return nil
}
