// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package archive

import (
	"fmt"
	"io"

	"github.com/Fantom-foundation/parray/common"
	"github.com/Fantom-foundation/parray/parray"
	"github.com/ethereum/go-ethereum/rlp"
)

//go:generate mockgen -source archive.go -destination archive_mocks.go -package archive

const (
	// ErrVersionNotFound is returned when accessing a version that was never
	// added to an archive.
	ErrVersionNotFound = common.ConstError("version not found")
	// ErrVersionOrder is returned when adding a version that is not higher
	// than all versions already present in an archive.
	ErrVersionOrder = common.ConstError("versions must be added in increasing order")
	// ErrCorrupted is returned by Verify if the stored data does not match
	// the recorded hashes.
	ErrCorrupted = common.ConstError("archive is corrupted")
)

// Archive retains snapshots of selected versions of a persistent array
// beyond the lifetime of the array. Versions are identified by numbers that
// need to be added in increasing order, though not necessarily densely.
//
// Every version is associated to a hash covering its own elements and the
// hash of the preceding version in the archive, forming a hash chain that
// allows to detect modifications of archived data.
//
// Snapshots are stored in the form produced by the Codec the archive was
// created with, which determines the supported element types.
type Archive[V any] interface {
	// Add records a snapshot of the given array as the given version.
	Add(version uint64, array *parray.Array[V]) error

	// Get restores the array recorded for the given version. The result is a
	// new array with its own version tree.
	Get(version uint64) (*parray.Array[V], error)

	// GetHash returns the chained hash recorded for the given version.
	GetHash(version uint64) (common.Hash, error)

	// GetLastVersion returns the highest version in the archive. The boolean
	// result is false if the archive is empty.
	GetLastVersion() (uint64, bool, error)

	// Verify recomputes the hash chain over all archived versions and fails
	// with ErrCorrupted if it does not match the recorded hashes.
	Verify() error

	// Archives must provide information on their memory footprint.
	common.MemoryFootprintProvider

	io.Closer
}

// EncodeSnapshot produces the RLP encoding of a list of elements.
func EncodeSnapshot[V any](elements []V) ([]byte, error) {
	data, err := rlp.EncodeToBytes(elements)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot restores a list of elements from its RLP encoding.
func DecodeSnapshot[V any](data []byte) ([]V, error) {
	var res []V
	if err := rlp.DecodeBytes(data, &res); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return res, nil
}

// GetChainHash computes the hash of a version from the hash of its
// predecessor and its encoded snapshot. The first version of an archive uses
// the zero hash as its predecessor.
func GetChainHash(previous common.Hash, encoded []byte) common.Hash {
	content := common.Keccak256(encoded)
	return common.Keccak256(previous[:], content[:])
}
