// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"fmt"
	"slices"
	"sync"
	"unsafe"

	"github.com/Fantom-foundation/parray/archive"
	"github.com/Fantom-foundation/parray/common"
	"github.com/Fantom-foundation/parray/parray"
	"golang.org/x/exp/maps"
)

// Archive is an in-memory implementation of the archive.Archive interface.
type Archive[V any] struct {
	codec       archive.Codec[V]
	versions    map[uint64]entry
	lastVersion uint64
	lastHash    common.Hash
	empty       bool
	mu          sync.Mutex
}

type entry struct {
	data []byte
	hash common.Hash
}

// NewArchive creates an empty in-memory archive storing snapshots in the
// form produced by the given codec.
func NewArchive[V any](codec archive.Codec[V]) *Archive[V] {
	return &Archive[V]{
		codec:    codec,
		versions: map[uint64]entry{},
		empty:    true,
	}
}

func (a *Archive[V]) Add(version uint64, array *parray.Array[V]) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.empty && version <= a.lastVersion {
		return fmt.Errorf("%w: unable to add version %d, archive already contains version %d", archive.ErrVersionOrder, version, a.lastVersion)
	}
	data, err := a.codec.Encode(array.Snapshot())
	if err != nil {
		return err
	}
	hash := archive.GetChainHash(a.lastHash, data)
	a.versions[version] = entry{data: data, hash: hash}
	a.lastVersion, a.lastHash, a.empty = version, hash, false
	return nil
}

func (a *Archive[V]) Get(version uint64) (*parray.Array[V], error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	entry, found := a.versions[version]
	if !found {
		return nil, fmt.Errorf("%w: %d", archive.ErrVersionNotFound, version)
	}
	elements, err := a.codec.Decode(entry.data)
	if err != nil {
		return nil, err
	}
	return parray.From(elements), nil
}

func (a *Archive[V]) GetHash(version uint64) (common.Hash, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	entry, found := a.versions[version]
	if !found {
		return common.Hash{}, fmt.Errorf("%w: %d", archive.ErrVersionNotFound, version)
	}
	return entry.hash, nil
}

func (a *Archive[V]) GetLastVersion() (uint64, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastVersion, !a.empty, nil
}

func (a *Archive[V]) Verify() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	versions := maps.Keys(a.versions)
	slices.Sort(versions)
	var hash common.Hash
	for _, version := range versions {
		entry := a.versions[version]
		hash = archive.GetChainHash(hash, entry.data)
		if hash != entry.hash {
			return fmt.Errorf("%w: hash mismatch for version %d", archive.ErrCorrupted, version)
		}
	}
	return nil
}

func (a *Archive[V]) GetMemoryFootprint() *common.MemoryFootprint {
	a.mu.Lock()
	defer a.mu.Unlock()
	size := uintptr(0)
	for _, entry := range a.versions {
		size += unsafe.Sizeof(entry) + unsafe.Sizeof(uint64(0)) + uintptr(cap(entry.data))
	}
	res := common.NewMemoryFootprint(unsafe.Sizeof(*a))
	res.AddChild("versions", common.NewMemoryFootprint(size))
	return res
}

func (a *Archive[V]) Close() error {
	return nil
}
