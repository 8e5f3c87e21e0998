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

package mactable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfsimtools/rfsim/types"
)

const (
	addrA types.MacAddress = 0x00aa11bb22cc
	addrB types.MacAddress = 0x00dd33ee44ff
)

func TestLearnAndLookup(t *testing.T) {
	var now types.Time
	tbl := New(types.Second, func() types.Time { return now })

	assert.False(t, tbl.Learn(3, addrA, 1))
	port, ok := tbl.Lookup(addrA, 1)
	require.True(t, ok)
	assert.Equal(t, 3, port)

	// refresh moves the port and reports the prior entry
	assert.True(t, tbl.Learn(5, addrA, 1))
	port, ok = tbl.Lookup(addrA, 1)
	require.True(t, ok)
	assert.Equal(t, 5, port)

	// unknown vlan and unknown address are silent misses
	_, ok = tbl.Lookup(addrA, 7)
	assert.False(t, ok)
	_, ok = tbl.Lookup(addrB, 1)
	assert.False(t, ok)
}

func TestAgingBoundary(t *testing.T) {
	var now types.Time
	tbl := New(types.Second, func() types.Time { return now })

	tbl.Learn(3, addrA, 1)

	now = 500 * types.Millisecond
	port, ok := tbl.Lookup(addrA, 1)
	require.True(t, ok)
	assert.Equal(t, 3, port)

	// the boundary is exclusive and the aged entry is eagerly removed
	now = types.Second
	_, ok = tbl.Lookup(addrA, 1)
	assert.False(t, ok)
	assert.Equal(t, 0, tbl.Size())
}

func TestBroadcastNeverInserted(t *testing.T) {
	var now types.Time
	tbl := New(types.Second, func() types.Time { return now })

	assert.False(t, tbl.Learn(1, types.BroadcastMacAddress, 0))
	_, ok := tbl.Lookup(types.BroadcastMacAddress, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, tbl.Size())
}

func TestFlushPort(t *testing.T) {
	var now types.Time
	tbl := New(types.Second, func() types.Time { return now })

	tbl.Learn(1, addrA, 0)
	tbl.Learn(1, addrB, 2)
	tbl.Learn(2, addrB, 0)

	tbl.FlushPort(1)
	_, ok := tbl.Lookup(addrA, 0)
	assert.False(t, ok)
	_, ok = tbl.Lookup(addrB, 2)
	assert.False(t, ok)
	port, ok := tbl.Lookup(addrB, 0)
	require.True(t, ok)
	assert.Equal(t, 2, port)
}

func TestRemapPort(t *testing.T) {
	var now types.Time
	tbl := New(types.Second, func() types.Time { return now })

	tbl.Learn(1, addrA, 0)
	tbl.Learn(1, addrB, 3)
	tbl.RemapPort(1, 9)

	port, ok := tbl.Lookup(addrA, 0)
	require.True(t, ok)
	assert.Equal(t, 9, port)
	port, ok = tbl.Lookup(addrB, 3)
	require.True(t, ok)
	assert.Equal(t, 9, port)
}

func TestExpire(t *testing.T) {
	var now types.Time
	tbl := New(types.Second, func() types.Time { return now })

	tbl.Learn(1, addrA, 0)
	now = 600 * types.Millisecond
	tbl.Learn(2, addrB, 0)

	now = 1100 * types.Millisecond
	tbl.ExpireAll()
	assert.Equal(t, 1, tbl.Size())
	port, ok := tbl.Lookup(addrB, 0)
	require.True(t, ok)
	assert.Equal(t, 2, port)

	now = 2 * types.Second
	tbl.Expire(0)
	assert.Equal(t, 0, tbl.Size())
}
