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

package coding

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/rfsimtools/rfsim/bitvec"
	"github.com/rfsimtools/rfsim/types"
)

func newDefaultCoder(t *testing.T) *ConvolutionalCoder {
	c, err := NewConvolutionalCoder(DefaultConfig())
	require.NoError(t, err)
	return c
}

func TestCoderParameters(t *testing.T) {
	c := newDefaultCoder(t)
	assert.Equal(t, 1, c.CodeRateK())
	assert.Equal(t, 2, c.CodeRateN())
	assert.Equal(t, 6, c.MemorySizeSum())
	assert.Equal(t, 64, c.NumStates())
}

func TestCoderBadConfigs(t *testing.T) {
	cases := []Config{
		{CodeRate: "zero", ConstraintLengths: []int{7}, TransferFunction: [][]string{{"133", "171"}}},
		{CodeRate: "1/2", ConstraintLengths: []int{7, 7}, TransferFunction: [][]string{{"133", "171"}}},
		{CodeRate: "1/2", ConstraintLengths: []int{7}, TransferFunction: [][]string{{"133"}}},
		{CodeRate: "1/2", ConstraintLengths: []int{7}, TransferFunction: [][]string{{"133", "999"}}},
		{CodeRate: "1/2", ConstraintLengths: []int{7}, TransferFunction: [][]string{{"133", "171"}},
			Puncturing: [][]int{{1, 1}}},
		{CodeRate: "1/2", ConstraintLengths: []int{7}, TransferFunction: [][]string{{"133", "171"}},
			Puncturing: [][]int{{0, 0}, {0, 0}}},
		{CodeRate: "1/2", ConstraintLengths: []int{7}, TransferFunction: [][]string{{"133", "171"}},
			DecodingMode: "fuzzy"},
	}
	for _, cfg := range cases {
		_, err := NewConvolutionalCoder(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrInvalidConfiguration), "config %+v", cfg)
	}
}

func TestEncodeKnownVector(t *testing.T) {
	c := newDefaultCoder(t)
	// all-zeros input stays all-zeros through a linear code
	encoded := c.Encode(bitvec.FromBits([]bool{false, false, false, false}), false)
	assert.Equal(t, "00000000", encoded.String())

	// a single 1 produces the two generators as the impulse response
	encoded = c.Encode(bitvec.FromBits([]bool{true, false, false, false, false, false, false}), false)
	// g0=1011011, g1=1111001, interleaved per input bit
	assert.Equal(t, "11011111001011", encoded.String())
}

func TestEncodeDecodeTerminatedIdentity(t *testing.T) {
	c := newDefaultCoder(t)
	info := bitvec.FromBytes([]byte{0xab, 0xcd})
	encoded := c.Encode(info, true)
	assert.Equal(t, (16+6)*2, encoded.Size())

	decoded, err := c.Decode(encoded, DecodingModeTerminated)
	require.NoError(t, err)
	assert.True(t, info.Equal(decoded), "decoded %s != info %s", decoded, info)
}

func TestDecodeCorrectsSingleBitFlip(t *testing.T) {
	c := newDefaultCoder(t)
	info := bitvec.FromBytes([]byte{0xab, 0xcd})
	encoded := c.Encode(info, true)

	for i := 0; i < encoded.Size(); i++ {
		corrupted := bitvec.FromBits(nil)
		for j := 0; j < encoded.Size(); j++ {
			corrupted.Append(encoded.GetBit(j) != (i == j))
		}
		decoded, err := c.Decode(corrupted, DecodingModeTerminated)
		require.NoError(t, err, "flip at %d", i)
		assert.True(t, info.Equal(decoded), "flip at %d not corrected", i)
	}
}

func TestEncodeDecodeTruncatedIdentity(t *testing.T) {
	c := newDefaultCoder(t)
	info := bitvec.FromBytes([]byte{0x5a, 0x99, 0x0f})
	encoded := c.Encode(info, false)
	assert.Equal(t, 24*2, encoded.Size())

	decoded, err := c.Decode(encoded, DecodingModeTruncated)
	require.NoError(t, err)
	assert.True(t, info.Equal(decoded))
}

func TestPuncturedRoundTrip(t *testing.T) {
	// rate 2/3 punctured from the rate 1/2 mother code
	cfg := DefaultConfig()
	cfg.Puncturing = [][]int{{1, 1}, {1, 0}}
	c, err := NewConvolutionalCoder(cfg)
	require.NoError(t, err)

	info := bitvec.FromBytes([]byte{0xc3, 0x3c})
	encoded := c.Encode(info, true)
	// 22 input bits -> 44 mother bits -> 3 of every 4 kept
	assert.Equal(t, 33, encoded.Size())

	decoded, err := c.Decode(encoded, DecodingModeTerminated)
	require.NoError(t, err)
	assert.True(t, info.Equal(decoded))
}

func TestDecodeRejectsBadLength(t *testing.T) {
	c := newDefaultCoder(t)
	_, err := c.Decode(bitvec.FromBits([]bool{true, false, true}), DecodingModeTerminated)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidInput))

	_, err = c.Decode(bitvec.FromBits([]bool{true, false}), "fuzzy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidConfiguration))
}

func TestDecodeTerminatedRoundTripProperty(t *testing.T) {
	c := newDefaultCoder(t)
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 1, 16).Draw(t, "data")
		info := bitvec.FromBytes(data)
		decoded, err := c.Decode(c.Encode(info, true), DecodingModeTerminated)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if !info.Equal(decoded) {
			t.Fatalf("round trip mismatch: %s != %s", decoded, info)
		}
	})
}
