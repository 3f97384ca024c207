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
	"io"
	"os"

	"github.com/Fantom-foundation/parray/archive"
	"github.com/Fantom-foundation/parray/archive/ldb"
	"github.com/urfave/cli/v2"
)

var Info = cli.Command{
	Action:    info,
	Name:      "info",
	Usage:     "lists information about an archive",
	ArgsUsage: "<directory>",
}

func info(context *cli.Context) error {
	// parse the directory argument
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing directory storing the archive")
	}
	return printArchiveInfo(os.Stdout, context.Args().Get(0))
}

func printArchiveInfo(out io.Writer, dir string) (err error) {
	target, err := ldb.OpenArchive[uint64](dir, archive.RlpCodec[uint64]{}, ldb.Options{ReadOnly: true})
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, target.Close())
	}()

	fmt.Fprintf(out, "Directory contains an archive with the following properties:\n")
	last, found, err := target.GetLastVersion()
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(out, "\tLast version:      none\n")
		return nil
	}
	hash, err := target.GetHash(last)
	if err != nil {
		return err
	}
	array, err := target.Get(last)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\tLast version:      %d\n", last)
	fmt.Fprintf(out, "\tLast hash:         %v\n", hash)
	fmt.Fprintf(out, "\tArray length:      %d\n", array.Len())
	fmt.Fprintf(out, "\nMemory footprint:\n%v", target.GetMemoryFootprint())
	return nil
}
