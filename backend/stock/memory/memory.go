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
	"unsafe"

	"github.com/Fantom-foundation/parray/backend/stock"
	"github.com/Fantom-foundation/parray/common"
)

// inMemoryStock provides an in-memory implementation of the stock.Stock interface.
type inMemoryStock[I stock.Index, V any] struct {
	values []V
}

// NewStock creates an empty in-memory stock.
func NewStock[I stock.Index, V any]() stock.Stock[I, V] {
	return NewStockWithCapacity[I, V](10)
}

// NewStockWithCapacity creates an empty in-memory stock with room for the
// given number of values before its storage needs to grow.
func NewStockWithCapacity[I stock.Index, V any](capacity int) stock.Stock[I, V] {
	return &inMemoryStock[I, V]{
		values: make([]V, 0, capacity),
	}
}

func (s *inMemoryStock[I, V]) New() I {
	var value V
	s.values = append(s.values, value)
	return I(len(s.values) - 1)
}

func (s *inMemoryStock[I, V]) Get(index I) V {
	return s.values[index]
}

func (s *inMemoryStock[I, V]) Set(index I, value V) {
	s.values[index] = value
}

func (s *inMemoryStock[I, V]) Size() int {
	return len(s.values)
}

func (s *inMemoryStock[I, V]) GetMemoryFootprint() *common.MemoryFootprint {
	var value V
	res := common.NewMemoryFootprint(unsafe.Sizeof(*s))
	res.AddChild("values", common.NewMemoryFootprint(unsafe.Sizeof(value)*uintptr(cap(s.values))))
	return res
}
