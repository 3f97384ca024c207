// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package parray

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/Fantom-foundation/parray/backend/stock"
	"github.com/Fantom-foundation/parray/backend/stock/memory"
	"github.com/Fantom-foundation/parray/common"
)

// ErrIndexOutOfRange is returned by Get and Update for indexes outside the
// range [0, Len()).
const ErrIndexOutOfRange = common.ConstError("index must be positive and bounded by array size")

// Array is one version of a fully persistent array. Arrays are never
// modified; Update produces a new version and leaves the receiver intact.
//
// All versions derived from the same constructed array share a version tree
// in which exactly one version is materialized at a time. Accessing a version
// makes it the materialized one, which costs time proportional to the number
// of updates separating it from the previously materialized version. Working
// on the most recent versions, or moving back and forth in small steps, is
// therefore cheap, while alternating between distant versions is not.
//
// Arrays sharing a version tree must not be used concurrently unless the tree
// was synchronized using Sync. Arrays must be created using New, From, or Of.
type Array[V any] struct {
	tree   *tree[V]
	length int
	node   nodeId
}

// New creates an array of the given length with all elements set to the zero
// value of V. It panics if the length is negative.
func New[V any](length int) *Array[V] {
	if length < 0 {
		panic(fmt.Sprintf("parray: negative length %d", length))
	}
	return newArray(make([]V, length))
}

// From creates an array holding a copy of the given elements.
func From[V any](elements []V) *Array[V] {
	res := make([]V, len(elements))
	copy(res, elements)
	return newArray(res)
}

// Of creates an array holding the given elements.
func Of[V any](elements ...V) *Array[V] {
	return From(elements)
}

func newArray[V any](elements []V) *Array[V] {
	return newArrayWithStock(memory.NewStock[nodeId, node[V]](), elements)
}

func newArrayWithStock[V any](nodes stock.Stock[nodeId, node[V]], elements []V) *Array[V] {
	tree, root := newTree(nodes, elements)
	return &Array[V]{tree: tree, length: len(elements), node: root}
}

// Sync makes the version tree of the given array, and thus every array
// sharing it, safe for concurrent use. Each operation on any of those arrays
// holds a lock on the whole tree for its full duration. Sync must be called
// before the array is shared among goroutines. It returns its argument.
func Sync[V any](a *Array[V]) *Array[V] {
	a.tree.synced.Store(true)
	return a
}

// Len returns the fixed length of the array.
func (a *Array[V]) Len() int {
	return a.length
}

// Get returns the element at the given index.
func (a *Array[V]) Get(index int) (V, error) {
	if err := a.checkIndex(index); err != nil {
		var empty V
		return empty, err
	}
	defer a.tree.lock()()

	// The edit of a diff node is the value of its own slot, no matter the
	// direction of its edge.
	if n := a.tree.get(a.node); !n.isMaterialized() && n.slotIndex() == index {
		return n.slotValue(), nil
	}
	n := a.tree.get(a.tree.reroot(a.node))
	return n.backing()[index], nil
}

// Update returns a new version of the array with the element at the given
// index replaced by the given value. The receiver is not modified.
func (a *Array[V]) Update(index int, value V) (*Array[V], error) {
	if err := a.checkIndex(index); err != nil {
		return nil, err
	}
	defer a.tree.lock()()
	return &Array[V]{
		tree:   a.tree,
		length: a.length,
		node:   a.tree.derive(a.node, index, value),
	}, nil
}

// Snapshot returns a copy of the elements of the array. Modifying the
// result does not affect any array.
func (a *Array[V]) Snapshot() []V {
	defer a.tree.lock()()
	n := a.tree.get(a.tree.reroot(a.node))
	return slices.Clone(n.backing())
}

// All iterates over the indexes and elements of a snapshot taken when the
// iteration starts.
func (a *Array[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, value := range a.Snapshot() {
			if !yield(i, value) {
				return
			}
		}
	}
}

// Values iterates over the elements of a snapshot taken when the iteration
// starts.
func (a *Array[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range a.Snapshot() {
			if !yield(value) {
				return
			}
		}
	}
}

func (a *Array[V]) String() string {
	return fmt.Sprint(a.Snapshot())
}

// Versions returns the number of versions in the version tree of this array.
func (a *Array[V]) Versions() int {
	defer a.tree.lock()()
	return a.tree.nodes.Size()
}

// GetStats reports the rerooting work performed on the version tree of this
// array so far.
func (a *Array[V]) GetStats() Stats {
	defer a.tree.lock()()
	return a.tree.getStats()
}

// GetMemoryFootprint approximates the memory retained by this array,
// including the version tree shared with related arrays.
func (a *Array[V]) GetMemoryFootprint() *common.MemoryFootprint {
	defer a.tree.lock()()
	res := common.NewMemoryFootprint(unsafe.Sizeof(*a))
	res.AddChild("tree", a.tree.getMemoryFootprint())
	return res
}

func (a *Array[V]) checkIndex(index int) error {
	if index < 0 || index >= a.length {
		return fmt.Errorf("%w: got %d, range [0,%d)", ErrIndexOutOfRange, index, a.length)
	}
	return nil
}
