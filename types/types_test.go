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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacAddress(t *testing.T) {
	addr, err := ParseMacAddress("00:aa:11:bb:22:cc")
	require.NoError(t, err)
	assert.Equal(t, MacAddress(0x00aa11bb22cc), addr)
	assert.Equal(t, "00:aa:11:bb:22:cc", addr.String())
	assert.False(t, addr.IsBroadcast())

	assert.True(t, BroadcastMacAddress.IsBroadcast())
	assert.True(t, BroadcastMacAddress.IsMulticast())
	assert.False(t, addr.IsMulticast())

	_, err = ParseMacAddress("not-a-mac")
	assert.Error(t, err)
}

func TestRadioMode(t *testing.T) {
	assert.True(t, RadioModeReceiver.CanReceive())
	assert.True(t, RadioModeTransceiver.CanReceive())
	assert.False(t, RadioModeTransmitter.CanReceive())
	assert.False(t, RadioModeOff.CanReceive())
	assert.True(t, RadioModeTransmitter.CanTransmit())
	assert.Equal(t, "transceiver", RadioModeTransceiver.String())
}

func TestParseRangeFilterMode(t *testing.T) {
	m, err := ParseRangeFilterMode("")
	require.NoError(t, err)
	assert.Equal(t, RangeFilterAnywhere, m)

	m, err = ParseRangeFilterMode("communicationRange")
	require.NoError(t, err)
	assert.Equal(t, RangeFilterCommunicationRange, m)

	_, err = ParseRangeFilterMode("somewhere")
	assert.Error(t, err)
}
