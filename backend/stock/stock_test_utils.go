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
	"testing"
)

type NamedStockFactory struct {
	ImplementationName string
	Open               func(t *testing.T) Stock[int, int]
}

// RunStockTests runs a set of black-box unit test against a generic Stock
// implementation defined by the given factory. It is intended to be used
// in implementation specific unit test packages to cover basic compliance
// properties as imposed by the Stock interface.
func RunStockTests(t *testing.T, factory NamedStockFactory) {
	wrap := func(test func(*testing.T, NamedStockFactory)) func(*testing.T) {
		return func(t *testing.T) {
			t.Parallel()
			test(t, factory)
		}
	}
	t.Run("NewCreatesFreshIndexValues", wrap(testNewCreatesFreshIndexValues))
	t.Run("NewValuesAreZero", wrap(testNewValuesAreZero))
	t.Run("LookUpsRetrieveTheSameValue", wrap(testLookUpsRetrieveTheSameValue))
	t.Run("SetDoesNotAffectOtherValues", wrap(testSetDoesNotAffectOtherValues))
	t.Run("SizeTracksAllocations", wrap(testSizeTracksAllocations))
	t.Run("LargeNumberOfElements", wrap(testLargeNumberOfElements))
	t.Run("ProvidesMemoryFootprint", wrap(testProvidesMemoryFootprint))
}

func testNewCreatesFreshIndexValues(t *testing.T, factory NamedStockFactory) {
	stock := factory.Open(t)
	index1 := stock.New()
	index2 := stock.New()
	if index1 == index2 {
		t.Errorf("expected different index values, got %v and %v", index1, index2)
	}
}

func testNewValuesAreZero(t *testing.T, factory NamedStockFactory) {
	stock := factory.Open(t)
	for i := 0; i < 10; i++ {
		index := stock.New()
		if got := stock.Get(index); got != 0 {
			t.Errorf("new value at index %d is not zero: %d", index, got)
		}
	}
}

func testLookUpsRetrieveTheSameValue(t *testing.T, factory NamedStockFactory) {
	stock := factory.Open(t)
	index1 := stock.New()
	stock.Set(index1, 1)
	index2 := stock.New()
	stock.Set(index2, 2)

	if got := stock.Get(index1); got != 1 {
		t.Errorf("failed to obtain value for index %d: got %d, wanted %d", index1, got, 1)
	}
	if got := stock.Get(index2); got != 2 {
		t.Errorf("failed to obtain value for index %d: got %d, wanted %d", index2, got, 2)
	}
}

func testSetDoesNotAffectOtherValues(t *testing.T, factory NamedStockFactory) {
	stock := factory.Open(t)
	indexes := make([]int, 0, 10)
	for i := 0; i < 10; i++ {
		index := stock.New()
		stock.Set(index, i)
		indexes = append(indexes, index)
	}
	stock.Set(indexes[5], 500)
	for i, index := range indexes {
		want := i
		if i == 5 {
			want = 500
		}
		if got := stock.Get(index); got != want {
			t.Errorf("invalid value for index %d: got %d, wanted %d", index, got, want)
		}
	}
}

func testSizeTracksAllocations(t *testing.T, factory NamedStockFactory) {
	stock := factory.Open(t)
	if got, want := stock.Size(), 0; got != want {
		t.Errorf("invalid size of empty stock: got %d, wanted %d", got, want)
	}
	for i := 1; i <= 5; i++ {
		stock.New()
		if got, want := stock.Size(), i; got != want {
			t.Errorf("invalid size: got %d, wanted %d", got, want)
		}
	}
}

func testLargeNumberOfElements(t *testing.T, factory NamedStockFactory) {
	const N = 1_000_000
	stock := factory.Open(t)
	seen := make(map[int]bool, N)
	for i := 0; i < N; i++ {
		index := stock.New()
		if seen[index] {
			t.Fatalf("index %d allocated twice", index)
		}
		seen[index] = true
		stock.Set(index, i)
	}
	for index := range seen {
		if got := stock.Get(index); got != index {
			t.Fatalf("invalid value for index %d: got %d", index, got)
		}
	}
}

func testProvidesMemoryFootprint(t *testing.T, factory NamedStockFactory) {
	stock := factory.Open(t)
	size := stock.GetMemoryFootprint()
	if size == nil {
		t.Fatalf("invalid memory footprint reported: %v", size)
	}
	for i := 0; i < 1000; i++ {
		stock.New()
	}
	if got, before := stock.GetMemoryFootprint().Total(), size.Total(); got <= before {
		t.Errorf("memory footprint did not grow, before %d, after %d", before, got)
	}
}
