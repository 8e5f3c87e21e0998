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

package bitvec

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rfsimtools/rfsim/logger"
	"github.com/rfsimtools/rfsim/types"
)

// ShortBitVector is a bounded bit sequence of at most 32 bits, hashable as a
// small integer. Bit 0 is the leftmost (most significant) bit.
type ShortBitVector struct {
	word uint32
	size int
}

const ShortBitVectorMaxSize = 32

// NewShort builds a vector of the given size from the low bits of word;
// word bit size-1 becomes bit 0 of the vector.
func NewShort(word uint32, size int) ShortBitVector {
	logger.AssertTrue(size >= 0 && size <= ShortBitVectorMaxSize, "short bit vector size out of range")
	if size < 32 {
		word &= (1 << uint(size)) - 1
	}
	return ShortBitVector{word: word, size: size}
}

// ParseOctal parses an octal literal such as "133" into a vector of exactly
// fixedSize bits, zero padded on the left.
func ParseOctal(s string, fixedSize int) (ShortBitVector, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 8, 32)
	if err != nil {
		return ShortBitVector{}, errors.Wrapf(types.ErrInvalidConfiguration, "bad octal literal %q", s)
	}
	if bits.Len32(uint32(v)) > fixedSize {
		return ShortBitVector{}, errors.Wrapf(types.ErrInvalidConfiguration, "octal literal %q does not fit %d bits", s, fixedSize)
	}
	return NewShort(uint32(v), fixedSize), nil
}

func (v ShortBitVector) Size() int {
	return v.size
}

// ToUint returns the vector as its integer hash.
func (v ShortBitVector) ToUint() uint32 {
	return v.word
}

func (v ShortBitVector) GetBit(i int) bool {
	logger.AssertTrue(i >= 0 && i < v.size, "bit index out of range")
	return v.word&(1<<uint(v.size-1-i)) != 0
}

func (v ShortBitVector) SetBit(i int, bit bool) ShortBitVector {
	logger.AssertTrue(i >= 0 && i < v.size, "bit index out of range")
	mask := uint32(1) << uint(v.size-1-i)
	if bit {
		v.word |= mask
	} else {
		v.word &^= mask
	}
	return v
}

// Append adds a bit on the right.
func (v ShortBitVector) Append(bit bool) ShortBitVector {
	logger.AssertTrue(v.size < ShortBitVectorMaxSize, "short bit vector full")
	v.word <<= 1
	if bit {
		v.word |= 1
	}
	v.size++
	return v
}

// And returns the bitwise AND of two equally sized vectors.
func (v ShortBitVector) And(other ShortBitVector) ShortBitVector {
	logger.AssertEqual(v.size, other.size, "size mismatch")
	return ShortBitVector{word: v.word & other.word, size: v.size}
}

// XorReduce returns the XOR of all bits, i.e. the parity of the word.
func (v ShortBitVector) XorReduce() bool {
	return bits.OnesCount32(v.word)%2 == 1
}

func (v ShortBitVector) String() string {
	var sb strings.Builder
	for i := 0; i < v.size; i++ {
		if v.GetBit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
