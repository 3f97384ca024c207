// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package stock

import (
	"github.com/Fantom-foundation/parray/common"
	"golang.org/x/exp/constraints"
)

//go:generate mockgen -source stock.go -destination stock_mocks.go -package stock -exclude_interfaces Index

// Stock is an arena of values each associated to a unique, Stock-controlled
// index serving as an identifier.
//
// Stocks mirror a memory-management system: indexes are pointers referencing
// memory locations, while values are the objects stored in those locations.
// The `New` operation is the allocation function and `Get` corresponds to
// pointer dereferencing. Values are never freed individually; a Stock and
// all its values are released together once the Stock is no longer
// referenced.
//
// Stock operations cannot fail. Accessing an index that was not produced by
// New of the same Stock is a programming error and panics.
//
// I ... the type used to address values in the stock (=index space)
// V ... the type of values stored in the stock
type Stock[I Index, V any] interface {
	// New allocates an index for a new value initialized to the zero value
	// of V. Indexes are dense, starting at 0, and never reused.
	New() I

	// Get retrieves the value associated to the given index.
	Get(I) V

	// Set updates the value associated to the given index.
	Set(I, V)

	// Size returns the number of values allocated so far.
	Size() int

	// Stocks must provide information on their memory footprint.
	common.MemoryFootprintProvider
}

// Index defines the type constraints on Stock index types.
type Index interface {
	constraints.Integer
}
