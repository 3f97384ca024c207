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
	"errors"
	"fmt"

	"github.com/Fantom-foundation/parray/archive"
	"github.com/Fantom-foundation/parray/archive/ldb"
	"github.com/urfave/cli/v2"
)

var Verify = cli.Command{
	Action:    withDiagnostics(verify),
	Name:      "verify",
	Usage:     "verifies the hash chain of an archive",
	ArgsUsage: "<directory>",
}

func verify(context *cli.Context) error {
	// parse the directory argument
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing directory storing the archive")
	}
	return verifyArchive(NewLog("verify"), context.Args().Get(0))
}

func verifyArchive(log *Log, dir string) error {
	target, err := ldb.OpenArchive[uint64](dir, archive.RlpCodec[uint64]{}, ldb.Options{ReadOnly: true})
	if err != nil {
		return err
	}
	log.Print("Starting verification ...")
	if err := target.Verify(); err != nil {
		return errors.Join(err, target.Close())
	}
	log.Print("Verification successful!")
	return target.Close()
}
