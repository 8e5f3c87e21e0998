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

package medium

import (
	"math"

	"github.com/rfsimtools/rfsim/environment"
	"github.com/rfsimtools/rfsim/geom"
	"github.com/rfsimtools/rfsim/types"
)

// ObstacleLoss accumulates the attenuation of the obstacles crossed by the
// line of sight. Frequency is passed explicitly.
type ObstacleLoss interface {
	ComputeObstacleLossDb(frequency float64, lineOfSight geom.LineSegment) types.DbValue
}

// DielectricObstacleLoss walks the physical environment and sums, per
// intersected obstacle, the dielectric absorption over the traversed length
// plus the reflection loss at the entry and exit faces.
type DielectricObstacleLoss struct {
	Env *environment.PhysicalEnvironment
}

func (o *DielectricObstacleLoss) ComputeObstacleLossDb(frequency float64, lineOfSight geom.LineSegment) types.DbValue {
	totalLossDb := 0.0
	for _, obj := range o.Env.Objects() {
		is, ok := obj.ComputeIntersection(lineOfSight)
		if !ok {
			continue
		}
		m := obj.Material
		d := is.Entry.Distance(is.Exit)
		if d > 0 {
			// power fraction surviving the dielectric absorption
			factor := math.Exp(-math.Atan(m.DielectricLossTangent(frequency)) *
				2 * math.Pi * frequency * d / m.PropagationSpeed())
			totalLossDb += -10 * math.Log10(factor)
		}
		// reflection loss at faces actually crossed
		n1, n2 := 1.0, m.RefractiveIndex()
		for _, normal := range []geom.Coord{is.NormalEntry, is.NormalExit} {
			if normal == (geom.Coord{}) {
				continue
			}
			r := (n1 - n2) / (n1 + n2)
			transmittance := 1 - r*r
			totalLossDb += -10 * math.Log10(transmittance)
		}
	}
	return totalLossDb
}

// IdealObstacleLoss blocks the signal entirely when any obstacle crosses the
// line of sight, and is transparent otherwise.
type IdealObstacleLoss struct {
	Env *environment.PhysicalEnvironment
}

func (o *IdealObstacleLoss) ComputeObstacleLossDb(frequency float64, lineOfSight geom.LineSegment) types.DbValue {
	for _, obj := range o.Env.Objects() {
		if is, ok := obj.ComputeIntersection(lineOfSight); ok && is.Entry.Distance(is.Exit) > 0 {
			return math.Inf(1)
		}
	}
	return 0
}
