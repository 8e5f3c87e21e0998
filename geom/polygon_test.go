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

package geom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfsimtools/rfsim/types"
)

func unitSquare(t *testing.T) *Polygon {
	p, err := NewPolygon([]Coord{
		{X: 0, Y: 0, Z: 0},
		{X: 4, Y: 0, Z: 0},
		{X: 4, Y: 4, Z: 0},
		{X: 0, Y: 4, Z: 0},
	})
	require.NoError(t, err)
	return p
}

func TestNewPolygonTooFewPoints(t *testing.T) {
	_, err := NewPolygon([]Coord{{X: 0}, {X: 1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidConfiguration))
}

func TestPolygonNormalUnitVector(t *testing.T) {
	p := unitSquare(t)
	n := p.NormalUnitVector()
	assert.InDelta(t, 0, n.X, 1e-12)
	assert.InDelta(t, 0, n.Y, 1e-12)
	assert.InDelta(t, 1, n.Z, 1e-12)
}

func TestPolygonClipStartInside(t *testing.T) {
	p := unitSquare(t)
	seg := LineSegment{P0: Coord{X: 2, Y: 2}, P1: Coord{X: 6, Y: 2}}
	is, ok := p.ComputeIntersection(seg)
	require.True(t, ok)

	assert.Equal(t, Coord{X: 2, Y: 2}, is.Entry)
	assert.Equal(t, Coord{X: 4, Y: 2}, is.Exit)
	assert.Equal(t, Coord{}, is.NormalEntry) // starts inside
	assert.InDelta(t, 1, is.NormalExit.X, 1e-12)
	assert.InDelta(t, 0, is.NormalExit.Y, 1e-12)
	assert.InDelta(t, 0, is.NormalExit.Z, 1e-12)
}

func TestPolygonClipThrough(t *testing.T) {
	p := unitSquare(t)
	seg := LineSegment{P0: Coord{X: -2, Y: 2}, P1: Coord{X: 6, Y: 2}}
	is, ok := p.ComputeIntersection(seg)
	require.True(t, ok)

	assert.Equal(t, Coord{X: 0, Y: 2}, is.Entry)
	assert.Equal(t, Coord{X: 4, Y: 2}, is.Exit)
	assert.InDelta(t, -1, is.NormalEntry.X, 1e-12)
	assert.InDelta(t, 1, is.NormalExit.X, 1e-12)
}

func TestPolygonClipFullyInside(t *testing.T) {
	p := unitSquare(t)
	seg := LineSegment{P0: Coord{X: 1, Y: 1}, P1: Coord{X: 3, Y: 3}}
	is, ok := p.ComputeIntersection(seg)
	require.True(t, ok)

	assert.Equal(t, seg.P0, is.Entry)
	assert.Equal(t, seg.P1, is.Exit)
	assert.Equal(t, Coord{}, is.NormalEntry)
	assert.Equal(t, Coord{}, is.NormalExit)
}

func TestPolygonClipOutside(t *testing.T) {
	p := unitSquare(t)
	seg := LineSegment{P0: Coord{X: -2, Y: 5}, P1: Coord{X: 6, Y: 5}}
	_, ok := p.ComputeIntersection(seg)
	assert.False(t, ok)

	// parallel to an edge and fully outside
	seg = LineSegment{P0: Coord{X: 0, Y: -1}, P1: Coord{X: 4, Y: -1}}
	_, ok = p.ComputeIntersection(seg)
	assert.False(t, ok)
}

func TestPolygonClipPointsOnSegment(t *testing.T) {
	p := unitSquare(t)
	segs := []LineSegment{
		{P0: Coord{X: -1, Y: 1}, P1: Coord{X: 5, Y: 3}},
		{P0: Coord{X: 2, Y: -3}, P1: Coord{X: 2, Y: 9}},
		{P0: Coord{X: 3.5, Y: 0.5}, P1: Coord{X: 9, Y: 0.5}},
	}
	for _, seg := range segs {
		is, ok := p.ComputeIntersection(seg)
		require.True(t, ok)
		d := seg.P1.Sub(seg.P0).Norm()
		// both intersection points must lie on the segment, entry not after exit
		tE := is.Entry.Sub(seg.P0).Norm() / d
		tL := is.Exit.Sub(seg.P0).Norm() / d
		assert.GreaterOrEqual(t, tE, 0.0)
		assert.LessOrEqual(t, tL, 1.0)
		assert.LessOrEqual(t, tE, tL)
	}
}

func TestCuboidClip(t *testing.T) {
	c, err := NewCuboid(Coord{X: 2, Y: 2, Z: 2})
	require.NoError(t, err)

	seg := LineSegment{P0: Coord{X: -5, Y: 0, Z: 0}, P1: Coord{X: 5, Y: 0, Z: 0}}
	is, ok := c.ComputeIntersection(seg)
	require.True(t, ok)
	assert.Equal(t, Coord{X: -1, Y: 0, Z: 0}, is.Entry)
	assert.Equal(t, Coord{X: 1, Y: 0, Z: 0}, is.Exit)
	assert.Equal(t, Coord{X: -1}, is.NormalEntry)
	assert.Equal(t, Coord{X: 1}, is.NormalExit)

	_, ok = c.ComputeIntersection(LineSegment{P0: Coord{X: -5, Y: 3, Z: 0}, P1: Coord{X: 5, Y: 3, Z: 0}})
	assert.False(t, ok)
}

func TestPrismClip(t *testing.T) {
	base := unitSquare(t)
	pr, err := NewPrism(base, 2)
	require.NoError(t, err)

	// through the side walls at mid height
	seg := LineSegment{P0: Coord{X: -2, Y: 2, Z: 1}, P1: Coord{X: 6, Y: 2, Z: 1}}
	is, ok := pr.ComputeIntersection(seg)
	require.True(t, ok)
	assert.Equal(t, Coord{X: 0, Y: 2, Z: 1}, is.Entry)
	assert.Equal(t, Coord{X: 4, Y: 2, Z: 1}, is.Exit)

	// through the caps
	seg = LineSegment{P0: Coord{X: 2, Y: 2, Z: -1}, P1: Coord{X: 2, Y: 2, Z: 3}}
	is, ok = pr.ComputeIntersection(seg)
	require.True(t, ok)
	assert.Equal(t, Coord{X: 2, Y: 2, Z: 0}, is.Entry)
	assert.Equal(t, Coord{X: 2, Y: 2, Z: 2}, is.Exit)
	assert.InDelta(t, -1, is.NormalEntry.Z, 1e-12)
	assert.InDelta(t, 1, is.NormalExit.Z, 1e-12)

	// above the prism
	_, ok = pr.ComputeIntersection(LineSegment{P0: Coord{X: -2, Y: 2, Z: 3}, P1: Coord{X: 6, Y: 2, Z: 3}})
	assert.False(t, ok)
}

func TestCoordMinMax(t *testing.T) {
	a := Coord{X: 1, Y: 5, Z: -2}
	b := Coord{X: 3, Y: 2, Z: -1}
	assert.Equal(t, Coord{X: 1, Y: 2, Z: -2}, Min(a, b))
	assert.Equal(t, Coord{X: 3, Y: 5, Z: -1}, Max(a, b))
	assert.True(t, IsNaN(NaNCoord()))
	assert.False(t, IsNaN(a))
}
