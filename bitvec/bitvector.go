// Copyright (c) 2024-2025, The RFSIM Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

// Package bitvec provides the bit sequences used by the coding layer.
package bitvec

import (
	"strings"

	"github.com/rfsimtools/rfsim/logger"
)

// BitVector is an ordered sequence of 0/1 bits of arbitrary length.
type BitVector struct {
	bits []bool
}

func New() *BitVector {
	return &BitVector{}
}

// FromBits builds a vector from a bit slice; the slice is copied.
func FromBits(bits []bool) *BitVector {
	b := make([]bool, len(bits))
	copy(b, bits)
	return &BitVector{bits: b}
}

// FromBytes builds a vector from bytes, most significant bit of each byte
// first.
func FromBytes(data []byte) *BitVector {
	v := &BitVector{bits: make([]bool, 0, len(data)*8)}
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			v.bits = append(v.bits, b&(1<<uint(i)) != 0)
		}
	}
	return v
}

func (v *BitVector) Size() int {
	return len(v.bits)
}

func (v *BitVector) Append(bit bool) {
	v.bits = append(v.bits, bit)
}

func (v *BitVector) GetBit(i int) bool {
	logger.AssertTrue(i >= 0 && i < len(v.bits), "bit index out of range")
	return v.bits[i]
}

func (v *BitVector) SetBit(i int, bit bool) {
	logger.AssertTrue(i >= 0 && i < len(v.bits), "bit index out of range")
	v.bits[i] = bit
}

// XorReduce returns the XOR of all bits.
func (v *BitVector) XorReduce() bool {
	r := false
	for _, b := range v.bits {
		r = r != b
	}
	return r
}

// ToUint64 interprets the first (up to 64) bits as a big-endian integer.
func (v *BitVector) ToUint64() uint64 {
	logger.AssertTrue(len(v.bits) <= 64, "bit vector too long for uint64")
	var r uint64
	for _, b := range v.bits {
		r <<= 1
		if b {
			r |= 1
		}
	}
	return r
}

func (v *BitVector) Equal(other *BitVector) bool {
	if v.Size() != other.Size() {
		return false
	}
	for i, b := range v.bits {
		if b != other.bits[i] {
			return false
		}
	}
	return true
}

func (v *BitVector) String() string {
	var sb strings.Builder
	for _, b := range v.bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
