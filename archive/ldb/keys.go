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
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb/util"
)

// tableSpace is a prefix separating the different kinds of keys stored in
// the same LevelDB instance.
type tableSpace byte

const (
	snapshotTable tableSpace = 'S'
	hashTable     tableSpace = 'H'
)

const versionSize = 8 // version number size (uint64)

// versionKey is a key for the version tables, it consists of
// * the tablespace
// * the version number in big-endian order, so keys sort by version
type versionKey [1 + versionSize]byte

func newVersionKey(table tableSpace, version uint64) versionKey {
	var k versionKey
	k[0] = byte(table)
	binary.BigEndian.PutUint64(k[1:], version)
	return k
}

func (k versionKey) table() tableSpace {
	return tableSpace(k[0])
}

func (k versionKey) version() uint64 {
	return binary.BigEndian.Uint64(k[1:])
}

func parseVersionKey(key []byte) (versionKey, bool) {
	var k versionKey
	if len(key) != len(k) {
		return k, false
	}
	copy(k[:], key)
	return k, true
}

// getTableRange provides the key range covering all versions of a table.
func getTableRange(table tableSpace) *util.Range {
	return util.BytesPrefix([]byte{byte(table)})
}
