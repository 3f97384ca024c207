// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package parray_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/Fantom-foundation/parray/parray"
)

func ExampleArray_Update() {
	original := parray.Of(1, 2, 3, 4)

	updated, err := original.Update(1, 5)
	if err != nil {
		log.Fatalf("cannot update array: %v", err)
	}

	fmt.Println(original)
	fmt.Println(updated)

	// Output:
	// [1 2 3 4]
	// [1 5 3 4]
}

func ExampleArray_Get() {
	a := parray.Of("a", "b", "c")

	value, err := a.Get(1)
	if err != nil {
		log.Fatalf("cannot read element: %v", err)
	}
	fmt.Println(value)

	if _, err := a.Get(3); errors.Is(err, parray.ErrIndexOutOfRange) {
		fmt.Println("index 3 is out of range")
	}

	// Output:
	// b
	// index 3 is out of range
}

func ExampleArray_All() {
	a := parray.New[string](3)
	a, _ = a.Update(0, "x")
	a, _ = a.Update(2, "z")

	for i, value := range a.All() {
		fmt.Printf("%d: %q\n", i, value)
	}

	// Output:
	// 0: "x"
	// 1: ""
	// 2: "z"
}

func ExampleSync() {
	a := parray.Sync(parray.New[int](4))

	done := make(chan *parray.Array[int])
	for i := 0; i < 4; i++ {
		go func() {
			res, _ := a.Update(i, i+1)
			done <- res
		}()
	}
	sum := 0
	for i := 0; i < 4; i++ {
		for value := range (<-done).Values() {
			sum += value
		}
	}
	fmt.Println(sum, a)

	// Output:
	// 10 [0 0 0 0]
}
