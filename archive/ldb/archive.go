// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/Fantom-foundation/parray/archive"
	"github.com/Fantom-foundation/parray/common"
	"github.com/Fantom-foundation/parray/parray"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// Options tunes the LevelDB instance backing an archive. Zero values select
// the LevelDB defaults.
type Options struct {
	// BlockCacheMiB is the size of the cache for uncompressed blocks.
	BlockCacheMiB int
	// WriteBufferMiB is the size of the in-memory table before it gets
	// flushed to disk.
	WriteBufferMiB int
	// ReadOnly opens the archive without permitting modifications.
	ReadOnly bool
}

func (o Options) toLevelDbOptions() *opt.Options {
	return &opt.Options{
		BlockCacheCapacity: o.BlockCacheMiB * opt.MiB,
		WriteBuffer:        o.WriteBufferMiB * opt.MiB,
		ReadOnly:           o.ReadOnly,
		ErrorIfMissing:     o.ReadOnly,
	}
}

// Archive is a LevelDB based implementation of the archive.Archive interface.
// Snapshots and hashes of versions are kept in separate table spaces, keyed
// by the version number.
type Archive[V any] struct {
	codec    archive.Codec[V]
	db       *leveldb.DB
	batch    leveldb.Batch
	last     lastVersionCache
	addMutex sync.Mutex
}

// lastVersionCache retains the most recently added version to avoid a
// lookup in the DB for each added version.
type lastVersionCache struct {
	version uint64
	hash    common.Hash
	valid   bool
	mu      sync.Mutex
}

func (c *lastVersionCache) get() (uint64, common.Hash, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version, c.hash, c.valid
}

func (c *lastVersionCache) set(version uint64, hash common.Hash) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version, c.hash, c.valid = version, hash, true
}

// OpenArchive opens the archive stored in the given directory. If the
// directory does not exist, an empty archive is created in it. The codec
// must be the one the archive was created with.
func OpenArchive[V any](directory string, codec archive.Codec[V], options Options) (*Archive[V], error) {
	db, err := leveldb.OpenFile(directory, options.toLevelDbOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open archive in %s: %w", directory, err)
	}
	res := &Archive[V]{codec: codec, db: db}
	version, hash, found, err := res.getLastVersionFromDb()
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	if found {
		res.last.set(version, hash)
	}
	return res, nil
}

// Add a new snapshot into the archive. Should be called from a single thread
// only.
func (a *Archive[V]) Add(version uint64, array *parray.Array[V]) error {
	a.addMutex.Lock()
	defer a.addMutex.Unlock()

	lastVersion, lastHash, found := a.last.get()
	if found && version <= lastVersion {
		return fmt.Errorf("%w: unable to add version %d, archive already contains version %d", archive.ErrVersionOrder, version, lastVersion)
	}

	data, err := a.codec.Encode(array.Snapshot())
	if err != nil {
		return err
	}
	hash := archive.GetChainHash(lastHash, data)

	snapshotK := newVersionKey(snapshotTable, version)
	hashK := newVersionKey(hashTable, version)

	a.batch.Reset()
	a.batch.Put(snapshotK[:], data)
	a.batch.Put(hashK[:], hash[:])
	if err := a.db.Write(&a.batch, nil); err != nil {
		return fmt.Errorf("failed to write version %d: %w", version, err)
	}

	a.last.set(version, hash)
	return nil
}

func (a *Archive[V]) Get(version uint64) (*parray.Array[V], error) {
	key := newVersionKey(snapshotTable, version)
	data, err := a.db.Get(key[:], nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", archive.ErrVersionNotFound, version)
	}
	if err != nil {
		return nil, err
	}
	elements, err := a.codec.Decode(data)
	if err != nil {
		return nil, err
	}
	return parray.From(elements), nil
}

func (a *Archive[V]) GetHash(version uint64) (common.Hash, error) {
	key := newVersionKey(hashTable, version)
	data, err := a.db.Get(key[:], nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return common.Hash{}, fmt.Errorf("%w: %d", archive.ErrVersionNotFound, version)
	}
	if err != nil {
		return common.Hash{}, err
	}
	return toHash(data)
}

func (a *Archive[V]) GetLastVersion() (uint64, bool, error) {
	version, _, found := a.last.get()
	return version, found, nil
}

func (a *Archive[V]) getLastVersionFromDb() (version uint64, hash common.Hash, found bool, err error) {
	iter := a.db.NewIterator(getTableRange(hashTable), nil)
	defer iter.Release()
	if !iter.Last() {
		return 0, common.Hash{}, false, iter.Error()
	}
	k, ok := parseVersionKey(iter.Key())
	if !ok {
		return 0, common.Hash{}, false, fmt.Errorf("%w: invalid key %x", archive.ErrCorrupted, iter.Key())
	}
	hash, err = toHash(iter.Value())
	if err != nil {
		return 0, common.Hash{}, false, err
	}
	return k.version(), hash, true, nil
}

// Verify walks the snapshot and hash tables in version order and checks the
// hash chain.
func (a *Archive[V]) Verify() error {
	snapshots := a.db.NewIterator(getTableRange(snapshotTable), nil)
	defer snapshots.Release()
	hashes := a.db.NewIterator(getTableRange(hashTable), nil)
	defer hashes.Release()

	var hash common.Hash
	for snapshots.Next() {
		if !hashes.Next() {
			return fmt.Errorf("%w: missing hash for snapshot %x", archive.ErrCorrupted, snapshots.Key())
		}
		snapshotK, ok1 := parseVersionKey(snapshots.Key())
		hashK, ok2 := parseVersionKey(hashes.Key())
		if !ok1 || !ok2 || snapshotK.version() != hashK.version() {
			return fmt.Errorf("%w: snapshot key %x does not match hash key %x", archive.ErrCorrupted, snapshots.Key(), hashes.Key())
		}
		recorded, err := toHash(hashes.Value())
		if err != nil {
			return err
		}
		hash = archive.GetChainHash(hash, snapshots.Value())
		if hash != recorded {
			return fmt.Errorf("%w: hash mismatch for version %d", archive.ErrCorrupted, snapshotK.version())
		}
	}
	if hashes.Next() {
		return fmt.Errorf("%w: missing snapshot for hash %x", archive.ErrCorrupted, hashes.Key())
	}
	return errors.Join(snapshots.Error(), hashes.Error())
}

func (a *Archive[V]) GetMemoryFootprint() *common.MemoryFootprint {
	res := common.NewMemoryFootprint(unsafe.Sizeof(*a))
	a.addMutex.Lock()
	batchSize := uintptr(len(a.batch.Dump()))
	a.addMutex.Unlock()
	res.AddChild("batch", common.NewMemoryFootprint(batchSize))
	var stats leveldb.DBStats
	if err := a.db.Stats(&stats); err == nil {
		res.AddChild("blockCache", common.NewMemoryFootprint(uintptr(stats.BlockCacheSize)))
	}
	return res
}

func (a *Archive[V]) Close() error {
	return a.db.Close()
}

func toHash(data []byte) (common.Hash, error) {
	var res common.Hash
	if len(data) != len(res) {
		return res, fmt.Errorf("%w: invalid hash length %d", archive.ErrCorrupted, len(data))
	}
	copy(res[:], data)
	return res, nil
}
