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

// Intersection is the clipped part of a segment inside a convex body. The
// normals are unit outward face normals, or the zero vector when the segment
// starts (ends) inside the body.
type Intersection struct {
	Entry       Coord
	Exit        Coord
	NormalEntry Coord
	NormalExit  Coord
}

// Shape is a convex body that can intersect a line segment.
type Shape interface {
	// ComputeIntersection clips seg against the body. Returns false when the
	// segment lies entirely outside.
	ComputeIntersection(seg LineSegment) (Intersection, bool)
}

// face is a half-space boundary: a point on the plane and the unit outward
// normal. A convex body is the intersection of its face half-spaces.
type face struct {
	point  Coord
	normal Coord
}

// clipConvex runs the Cyrus-Beck clip of seg against the face half-spaces.
// Exact zero comparisons against tE/tL are intentional: tE starts at 0, tL at
// 1, and ties keep earlier results.
func clipConvex(faces []face, seg LineSegment) (Intersection, bool) {
	d := seg.P1.Sub(seg.P0)
	tE, tL := 0.0, 1.0
	var normalEntry, normalExit Coord
	for _, f := range faces {
		num := f.normal.Dot(f.point.Sub(seg.P0))
		den := f.normal.Dot(d)
		if den < 0 { // entering the half-space
			t := num / den
			if t > tE {
				tE = t
				normalEntry = f.normal
			}
			if tE > tL {
				return Intersection{}, false
			}
		} else if den > 0 { // leaving the half-space
			t := num / den
			if t < tL {
				tL = t
				normalExit = f.normal
			}
			if tL < tE {
				return Intersection{}, false
			}
		} else if num < 0 { // parallel and outside
			return Intersection{}, false
		}
	}
	if tE == 0 {
		normalEntry = Coord{}
	}
	if tL == 1 {
		normalExit = Coord{}
	}
	return Intersection{
		Entry:       seg.P0.Add(d.Mul(tE)),
		Exit:        seg.P0.Add(d.Mul(tL)),
		NormalEntry: normalEntry,
		NormalExit:  normalExit,
	}, true
}
