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
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/Fantom-foundation/parray/backend/stock"
	"github.com/Fantom-foundation/parray/common"
)

// tree is the version graph shared by all arrays derived from the same
// constructed array. Nodes are kept in a stock and reference each other by
// their ids, so reversing an edge is a rewrite of two stock entries.
//
// A tree is not safe for concurrent use unless it is synchronized, in which
// case all operations of all arrays sharing the tree are serialized.
type tree[V any] struct {
	nodes  stock.Stock[nodeId, node[V]]
	root   nodeId   // the materialized node
	path   []nodeId // reused buffer for the path reversed by rotate
	synced atomic.Bool
	mu     sync.Mutex

	reroots uint64
	flips   uint64
}

// newTree creates a tree consisting of a single materialized node owning the
// given elements and returns the tree together with the id of that node.
func newTree[V any](nodes stock.Stock[nodeId, node[V]], elements []V) (*tree[V], nodeId) {
	id := nodes.New()
	nodes.Set(id, newMaterializedNode(elements))
	return &tree[V]{nodes: nodes, root: id}, id
}

// lock acquires the tree lock if the tree is synchronized and returns the
// matching release function. Trees synchronized while an operation is in
// flight are locked by subsequent operations only.
func (t *tree[V]) lock() (unlock func()) {
	if !t.synced.Load() {
		return func() {}
	}
	t.mu.Lock()
	return t.mu.Unlock
}

func (t *tree[V]) get(id nodeId) node[V] {
	return t.nodes.Get(id)
}

// derive adds a new version to the tree that differs from the given origin
// in a single slot. The tree structure is not altered otherwise.
func (t *tree[V]) derive(origin nodeId, index int, value V) nodeId {
	id := t.nodes.New()
	t.nodes.Set(id, newDiffNode(origin, index, value))
	return id
}

// reroot makes the given node the materialized node of the tree. The
// elements observed through any node of the tree are not affected.
func (t *tree[V]) reroot(target nodeId) nodeId {
	if n := t.get(target); n.isMaterialized() {
		return target
	}
	return t.rotate(target)
}

// rotate reverses all edges on the live path from the given node to the
// materialized node of the tree, starting with the edge next to the
// materialized node and working back towards the given node.
func (t *tree[V]) rotate(target nodeId) nodeId {
	// Collecting the path is the only operation that may allocate. It must
	// complete before the first node gets modified.
	path := t.path[:0]
	cur := target
	for {
		n := t.get(cur)
		if n.isMaterialized() {
			break
		}
		path = append(path, cur)
		cur = n.neighbor
	}
	t.path = path

	parent := cur
	for i := len(path) - 1; i >= 0; i-- {
		t.swapRoot(parent, path[i])
		parent = path[i]
	}
	t.reroots++
	return target
}

// swapRoot flips the edge between the materialized parent and its diff
// child. Afterwards the child owns the backing slice and the parent is a diff
// restoring the slot value the child's edit has overwritten.
func (t *tree[V]) swapRoot(parentId, childId nodeId) {
	parent := t.get(parentId)
	child := t.get(childId)

	elements := parent.backing()
	index, value := child.slotIndex(), child.slotValue()

	parent.becomeDiff(childId, slotEdit[V]{index: index, value: elements[index]})
	child.becomeMaterialized(elements)
	elements[index] = value

	t.nodes.Set(parentId, parent)
	t.nodes.Set(childId, child)
	t.root = childId
	t.flips++
}

func (t *tree[V]) getStats() Stats {
	return Stats{
		Versions: t.nodes.Size(),
		Reroots:  t.reroots,
		Flips:    t.flips,
	}
}

func (t *tree[V]) getMemoryFootprint() *common.MemoryFootprint {
	var value V
	root := t.get(t.root)
	res := common.NewMemoryFootprint(unsafe.Sizeof(*t))
	res.AddChild("nodes", t.nodes.GetMemoryFootprint())
	res.AddChild("backing", common.NewMemoryFootprint(unsafe.Sizeof(value)*uintptr(cap(root.backing()))))
	res.AddChild("path", common.NewMemoryFootprint(unsafe.Sizeof(nodeId(0))*uintptr(cap(t.path))))
	return res
}

// Stats summarizes the work performed on a version tree.
type Stats struct {
	// Versions is the number of versions in the tree.
	Versions int
	// Reroots is the number of accesses that had to move the materialized
	// version of the tree.
	Reroots uint64
	// Flips is the total number of edges reversed while rerooting. Flips
	// divided by Reroots is the average live path length.
	Flips uint64
}
