// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package archive

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Codec converts the elements of a snapshot into the form stored in an
// archive and back. Hashes of archived versions cover the encoded form, so
// an archive must always be accessed using the same codec.
type Codec[V any] interface {
	Encode(elements []V) ([]byte, error)
	Decode(data []byte) ([]V, error)
}

// RlpCodec encodes snapshots as RLP lists of their elements. It supports the
// element types the rlp package can encode: unsigned integers, bools,
// strings, byte slices, and structs, slices or pointers of those. Signed
// integers and floats are rejected; use IntegerCodec or FloatCodec instead.
type RlpCodec[V any] struct{}

func (RlpCodec[V]) Encode(elements []V) ([]byte, error) {
	return EncodeSnapshot(elements)
}

func (RlpCodec[V]) Decode(data []byte) ([]V, error) {
	return DecodeSnapshot[V](data)
}

// IntegerCodec encodes snapshots of signed or unsigned integers as RLP lists
// of the 64-bit two's complement form of their elements.
type IntegerCodec[V constraints.Integer] struct{}

func (IntegerCodec[V]) Encode(elements []V) ([]byte, error) {
	words := make([]uint64, len(elements))
	for i, element := range elements {
		words[i] = uint64(element)
	}
	return EncodeSnapshot(words)
}

func (IntegerCodec[V]) Decode(data []byte) ([]V, error) {
	words, err := DecodeSnapshot[uint64](data)
	if err != nil {
		return nil, err
	}
	res := make([]V, len(words))
	for i, word := range words {
		res[i] = V(word)
	}
	return res, nil
}

// FloatCodec encodes snapshots of floating point numbers as RLP lists of the
// IEEE 754 bit patterns of their elements widened to 64 bits.
type FloatCodec[V constraints.Float] struct{}

func (FloatCodec[V]) Encode(elements []V) ([]byte, error) {
	words := make([]uint64, len(elements))
	for i, element := range elements {
		words[i] = math.Float64bits(float64(element))
	}
	return EncodeSnapshot(words)
}

func (FloatCodec[V]) Decode(data []byte) ([]V, error) {
	words, err := DecodeSnapshot[uint64](data)
	if err != nil {
		return nil, err
	}
	res := make([]V, len(words))
	for i, word := range words {
		res[i] = V(math.Float64frombits(word))
	}
	return res, nil
}
