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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitVectorBasics(t *testing.T) {
	v := New()
	assert.Equal(t, 0, v.Size())
	v.Append(true)
	v.Append(false)
	v.Append(true)
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, "101", v.String())
	assert.True(t, v.GetBit(0))
	assert.False(t, v.GetBit(1))
	assert.Equal(t, uint64(5), v.ToUint64())
	assert.False(t, v.XorReduce())

	v.SetBit(1, true)
	assert.Equal(t, "111", v.String())
	assert.True(t, v.XorReduce())
}

func TestBitVectorFromBytes(t *testing.T) {
	v := FromBytes([]byte{0xab, 0xcd})
	assert.Equal(t, 16, v.Size())
	assert.Equal(t, "1010101111001101", v.String())
	assert.Equal(t, uint64(0xabcd), v.ToUint64())
}

func TestBitVectorEqual(t *testing.T) {
	a := FromBits([]bool{true, false, true})
	b := FromBits([]bool{true, false, true})
	c := FromBits([]bool{true, false})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestShortBitVectorOctal(t *testing.T) {
	g, err := ParseOctal("133", 7)
	require.NoError(t, err)
	assert.Equal(t, "1011011", g.String())

	g, err = ParseOctal("171", 7)
	require.NoError(t, err)
	assert.Equal(t, "1111001", g.String())

	_, err = ParseOctal("777", 7) // does not fit 7 bits? 777_8 = 111111111_2
	assert.Error(t, err)

	_, err = ParseOctal("19", 7)
	assert.Error(t, err)
}

func TestShortBitVectorOps(t *testing.T) {
	v := NewShort(0b1011, 4)
	assert.Equal(t, 4, v.Size())
	assert.True(t, v.GetBit(0))
	assert.False(t, v.GetBit(1))
	assert.True(t, v.XorReduce())
	assert.Equal(t, uint32(0b1011), v.ToUint())

	v2 := v.Append(true)
	assert.Equal(t, "10111", v2.String())

	and := v.And(NewShort(0b0110, 4))
	assert.Equal(t, "0010", and.String())
	assert.True(t, and.XorReduce())

	v3 := v.SetBit(1, true)
	assert.Equal(t, "1111", v3.String())
	assert.False(t, v3.XorReduce())
}
