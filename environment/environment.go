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

// Package environment describes the physical surroundings of the radio
// medium: obstacles with a shape, a position and a material, queried by the
// obstacle loss models.
package environment

import (
	"github.com/rfsimtools/rfsim/geom"
	"github.com/rfsimtools/rfsim/material"
)

// PhysicalObject is an obstacle. Its shape lives in a local frame anchored
// at Position.
type PhysicalObject struct {
	Name     string
	Position geom.Coord
	Shape    geom.Shape
	Material *material.Material
}

// ComputeIntersection clips a world-frame segment against the object.
func (o *PhysicalObject) ComputeIntersection(seg geom.LineSegment) (geom.Intersection, bool) {
	is, ok := o.Shape.ComputeIntersection(seg.Translate(o.Position))
	if !ok {
		return geom.Intersection{}, false
	}
	is.Entry = is.Entry.Add(o.Position)
	is.Exit = is.Exit.Add(o.Position)
	return is, true
}

// PhysicalEnvironment is the static collection of obstacles.
type PhysicalEnvironment struct {
	objects []*PhysicalObject
}

func New() *PhysicalEnvironment {
	return &PhysicalEnvironment{}
}

func (e *PhysicalEnvironment) AddObject(o *PhysicalObject) {
	e.objects = append(e.objects, o)
}

func (e *PhysicalEnvironment) Objects() []*PhysicalObject {
	return e.objects
}
