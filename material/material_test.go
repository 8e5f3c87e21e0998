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

package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirDerivedValues(t *testing.T) {
	assert.InDelta(t, 1.0002950, Air.RefractiveIndex(), 1e-7)
	assert.InDelta(t, 299704023.86, Air.PropagationSpeed(), 1.0)
}

func TestVacuumPropagationSpeed(t *testing.T) {
	assert.Equal(t, 299792458.0, Vacuum.PropagationSpeed())
}

func TestDielectricLossTangent(t *testing.T) {
	// brick at 2.4 GHz
	lt := Brick.DielectricLossTangent(2.4e9)
	want := 1.0 / (2 * math.Pi * 2.4e9 * 3e3 * 4.5 * 8.854187817e-12)
	assert.InDelta(t, want, lt, want*1e-12)

	// uncharacterized resistivity propagates NaN
	assert.True(t, math.IsNaN(Air.DielectricLossTangent(2.4e9)))
	assert.True(t, math.IsNaN(Copper.RefractiveIndex()))
}

func TestRegistry(t *testing.T) {
	m, ok := Get("concrete")
	require.True(t, ok)
	assert.Equal(t, Concrete, m)

	_, ok = Get("unobtainium")
	assert.False(t, ok)

	custom := New("drywall", 1e13, 2.0, 1)
	Add(custom)
	m, ok = Get("drywall")
	require.True(t, ok)
	assert.Equal(t, custom, m)
}
