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

// Package geom provides the 3-D geometry used by the radio medium: coordinate
// vectors, line segments, convex polygons, prisms and cuboids, and
// segment/convex-body intersection with entry/exit face normals.
package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Coord is a 3-D point or vector. It is the r3 vector type, so all of its
// arithmetic (Add, Sub, Mul, Dot, Cross, Norm, Distance, Normalize) applies.
type Coord = r3.Vector

// NaNCoord marks an unspecified coordinate; NaN propagates silently through
// computations that consume it.
func NaNCoord() Coord {
	return Coord{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
}

func IsNaN(c Coord) bool {
	return math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z)
}

// Min returns the componentwise minimum of two coordinates.
func Min(a, b Coord) Coord {
	return Coord{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// Max returns the componentwise maximum of two coordinates.
func Max(a, b Coord) Coord {
	return Coord{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// LineSegment is the ordered pair of endpoints (P0, P1), parameterized by
// t in [0,1].
type LineSegment struct {
	P0 Coord
	P1 Coord
}

// Point returns P0 + t*(P1-P0).
func (s LineSegment) Point(t float64) Coord {
	return s.P0.Add(s.P1.Sub(s.P0).Mul(t))
}

func (s LineSegment) Length() float64 {
	return s.P0.Distance(s.P1)
}

// Translate shifts both endpoints by -offset, moving the segment into the
// local frame of a shape positioned at offset.
func (s LineSegment) Translate(offset Coord) LineSegment {
	return LineSegment{P0: s.P0.Sub(offset), P1: s.P1.Sub(offset)}
}
