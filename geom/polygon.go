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
	"github.com/pkg/errors"

	"github.com/rfsimtools/rfsim/types"
)

// Polygon is an ordered sequence of at least 3 coplanar points bounding a
// convex region of its plane. Edges are the cyclic pairs (p_i, p_{i+1 mod n}).
type Polygon struct {
	points []Coord
}

// NewPolygon builds a polygon from its corner points. The first three points
// must not be collinear; they define the plane normal.
func NewPolygon(points []Coord) (*Polygon, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(types.ErrInvalidConfiguration, "polygon needs at least 3 points, got %d", len(points))
	}
	pts := make([]Coord, len(points))
	copy(pts, points)
	return &Polygon{points: pts}, nil
}

func (p *Polygon) Points() []Coord {
	return p.points
}

// NormalUnitVector derives the plane normal from points 0, 1 and 2.
func (p *Polygon) NormalUnitVector() Coord {
	v1 := p.points[1].Sub(p.points[0])
	v2 := p.points[2].Sub(p.points[0])
	return v1.Cross(v2).Normalize()
}

func (p *Polygon) Centroid() Coord {
	var c Coord
	for _, pt := range p.points {
		c = c.Add(pt)
	}
	return c.Mul(1.0 / float64(len(p.points)))
}

// edgeOutwardNormal computes the unit normal of edge i lying in the polygon
// plane and pointing away from the interior. The normal is edge x planeNormal,
// oriented by testing against the centroid.
func (p *Polygon) edgeOutwardNormal(i int, planeNormal, centroid Coord) Coord {
	a := p.points[i]
	b := p.points[(i+1)%len(p.points)]
	n := b.Sub(a).Cross(planeNormal)
	if n.Dot(centroid.Sub(a)) > 0 {
		n = n.Mul(-1)
	}
	return n.Normalize()
}

// faces returns the edge half-space boundaries of the polygon region.
func (p *Polygon) faces() []face {
	planeNormal := p.NormalUnitVector()
	centroid := p.Centroid()
	fs := make([]face, len(p.points))
	for i := range p.points {
		fs[i] = face{point: p.points[i], normal: p.edgeOutwardNormal(i, planeNormal, centroid)}
	}
	return fs
}

// ComputeIntersection clips a coplanar segment against the polygon's edge
// half-spaces with the Cyrus-Beck scheme.
func (p *Polygon) ComputeIntersection(seg LineSegment) (Intersection, bool) {
	return clipConvex(p.faces(), seg)
}
