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

// Prism is a convex body generated by extruding a convex base polygon along
// its plane normal by height.
type Prism struct {
	base   *Polygon
	height float64
	fs     []face
}

func NewPrism(base *Polygon, height float64) (*Prism, error) {
	if base == nil || height <= 0 {
		return nil, errors.Wrap(types.ErrInvalidConfiguration, "prism needs a base polygon and a positive height")
	}
	p := &Prism{base: base, height: height}
	p.fs = p.computeFaces()
	return p, nil
}

func (p *Prism) Base() *Polygon {
	return p.base
}

func (p *Prism) Height() float64 {
	return p.height
}

func (p *Prism) computeFaces() []face {
	normal := p.base.NormalUnitVector()
	centroid := p.base.Centroid()
	pts := p.base.Points()
	fs := make([]face, 0, len(pts)+2)
	fs = append(fs,
		face{point: pts[0], normal: normal.Mul(-1)},                 // base cap
		face{point: pts[0].Add(normal.Mul(p.height)), normal: normal}) // top cap
	for i := range pts {
		fs = append(fs, face{point: pts[i], normal: p.base.edgeOutwardNormal(i, normal, centroid)})
	}
	return fs
}

// ComputeIntersection clips the segment against all prism faces.
func (p *Prism) ComputeIntersection(seg LineSegment) (Intersection, bool) {
	return clipConvex(p.fs, seg)
}

// Cuboid is the axis-aligned prism parameterized by a size triple and
// centered on the origin of its local frame.
type Cuboid struct {
	size Coord
	fs   []face
}

func NewCuboid(size Coord) (*Cuboid, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, errors.Wrapf(types.ErrInvalidConfiguration, "cuboid needs positive size, got %v", size)
	}
	c := &Cuboid{size: size}
	min := size.Mul(-0.5)
	max := size.Mul(0.5)
	c.fs = []face{
		{point: min, normal: Coord{X: -1}},
		{point: min, normal: Coord{Y: -1}},
		{point: min, normal: Coord{Z: -1}},
		{point: max, normal: Coord{X: 1}},
		{point: max, normal: Coord{Y: 1}},
		{point: max, normal: Coord{Z: 1}},
	}
	return c, nil
}

func (c *Cuboid) Size() Coord {
	return c.size
}

// ComputeIntersection clips the segment against the six cuboid faces.
func (c *Cuboid) ComputeIntersection(seg LineSegment) (Intersection, bool) {
	return clipConvex(c.fs, seg)
}
