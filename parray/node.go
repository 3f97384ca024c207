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
	"math"
)

// nodeId addresses a version node within the node stock of a version tree.
type nodeId uint64

// noNode is the origin of the node created when constructing an array.
const noNode = nodeId(math.MaxUint64)

// nodeState is the discriminant of the two node variants.
type nodeState uint8

const (
	// materialized nodes own the backing slice of the tree.
	materialized nodeState = iota
	// diff nodes differ from their neighbor in a single slot.
	diff
)

func (s nodeState) String() string {
	switch s {
	case materialized:
		return "materialized"
	case diff:
		return "diff"
	}
	return fmt.Sprintf("nodeState(%d)", s)
}

// orientation describes how a diff edit relates to the creation history.
type orientation uint8

const (
	// forward edits lead from the node's origin to the node itself.
	forward orientation = iota
	// undo edits lead from a descendant of the node back to the node.
	undo
)

func (o orientation) String() string {
	switch o {
	case forward:
		return "forward"
	case undo:
		return "undo"
	}
	return fmt.Sprintf("orientation(%d)", o)
}

// slotEdit is a single slot assignment. Applied to the elements of a diff
// node's neighbor it yields the elements of the node itself.
type slotEdit[V any] struct {
	index int
	value V
}

// node is a single version in a version tree. Exactly one node of a tree is
// materialized and owns the backing slice; every other node is a diff
// relative to its neighbor. Edges between nodes get reversed by rerooting,
// while the origin, the node an update was applied to when creating this
// node, never changes.
type node[V any] struct {
	state    nodeState
	origin   nodeId
	neighbor nodeId      // valid for diff nodes only
	edit     slotEdit[V] // valid for diff nodes only
	elements []V         // valid for materialized nodes only
}

func newMaterializedNode[V any](elements []V) node[V] {
	return node[V]{
		state:    materialized,
		origin:   noNode,
		neighbor: noNode,
		elements: elements,
	}
}

func newDiffNode[V any](origin nodeId, index int, value V) node[V] {
	return node[V]{
		state:    diff,
		origin:   origin,
		neighbor: origin,
		edit:     slotEdit[V]{index: index, value: value},
	}
}

func (n *node[V]) isMaterialized() bool {
	return n.state == materialized
}

func (n *node[V]) backing() []V {
	return n.elements
}

func (n *node[V]) slotIndex() int {
	return n.edit.index
}

func (n *node[V]) slotValue() V {
	return n.edit.value
}

// orientation reports whether the edit of a diff node replays the update
// that created the node or reverts an update applied to it.
func (n *node[V]) orientation() orientation {
	if n.neighbor == n.origin {
		return forward
	}
	return undo
}

// becomeDiff turns the node into a diff relative to the given neighbor,
// releasing its ownership of the backing slice.
func (n *node[V]) becomeDiff(neighbor nodeId, edit slotEdit[V]) {
	n.state = diff
	n.neighbor = neighbor
	n.edit = edit
	n.elements = nil
}

// becomeMaterialized makes the node the owner of the given backing slice.
func (n *node[V]) becomeMaterialized(elements []V) {
	var empty slotEdit[V]
	n.state = materialized
	n.neighbor = noNode
	n.edit = empty
	n.elements = elements
}

func (n node[V]) String() string {
	if n.isMaterialized() {
		return fmt.Sprintf("materialized(%v)", n.elements)
	}
	return fmt.Sprintf("diff(%d, [%d]=%v, %v)", n.neighbor, n.edit.index, n.edit.value, n.orientation())
}
