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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfsimtools/rfsim/environment"
	"github.com/rfsimtools/rfsim/geom"
	"github.com/rfsimtools/rfsim/material"
)

func wallEnvironment(t *testing.T) *environment.PhysicalEnvironment {
	env := environment.New()
	wall, err := geom.NewCuboid(geom.Coord{X: 0.3, Y: 10, Z: 3})
	require.NoError(t, err)
	env.AddObject(&environment.PhysicalObject{
		Name:     "wall",
		Position: geom.Coord{X: 5},
		Shape:    wall,
		Material: material.Brick,
	})
	return env
}

func TestDielectricObstacleLoss(t *testing.T) {
	loss := &DielectricObstacleLoss{Env: wallEnvironment(t)}

	// line of sight through the wall
	through := geom.LineSegment{P0: geom.Coord{}, P1: geom.Coord{X: 10}}
	lossDb := loss.ComputeObstacleLossDb(2.4e9, through)
	assert.Greater(t, lossDb, 0.0)
	assert.False(t, math.IsInf(lossDb, 1))

	// line of sight missing the wall
	clear := geom.LineSegment{P0: geom.Coord{Y: 20}, P1: geom.Coord{X: 10, Y: 20}}
	assert.Equal(t, 0.0, loss.ComputeObstacleLossDb(2.4e9, clear))

	// a thicker wall attenuates more
	thick := environment.New()
	slab, err := geom.NewCuboid(geom.Coord{X: 1.0, Y: 10, Z: 3})
	require.NoError(t, err)
	thick.AddObject(&environment.PhysicalObject{Position: geom.Coord{X: 5}, Shape: slab, Material: material.Brick})
	thickLoss := &DielectricObstacleLoss{Env: thick}
	assert.Greater(t, thickLoss.ComputeObstacleLossDb(2.4e9, through), lossDb)
}

func TestIdealObstacleLoss(t *testing.T) {
	loss := &IdealObstacleLoss{Env: wallEnvironment(t)}

	through := geom.LineSegment{P0: geom.Coord{}, P1: geom.Coord{X: 10}}
	assert.True(t, math.IsInf(loss.ComputeObstacleLossDb(2.4e9, through), 1))

	clear := geom.LineSegment{P0: geom.Coord{Y: 20}, P1: geom.Coord{X: 10, Y: 20}}
	assert.Equal(t, 0.0, loss.ComputeObstacleLossDb(2.4e9, clear))
}

func TestObstacleLossLowersReception(t *testing.T) {
	pathLoss := NewFreeSpacePathLoss()
	clearAtt := &ScalarAttenuation{PathLoss: pathLoss}
	wallAtt := &ScalarAttenuation{PathLoss: pathLoss, ObstacleLoss: &DielectricObstacleLoss{Env: wallEnvironment(t)}}

	rx := NewRadio(testRadioConfig(geom.Coord{X: 10}))
	tx := &Transmission{
		StartPosition:   geom.Coord{},
		EndPosition:     geom.Coord{},
		PowerDbm:        20,
		CenterFrequency: 2.4e9,
		Bandwidth:       20e6,
	}
	arrival := &Arrival{StartPosition: geom.Coord{X: 10}, EndPosition: geom.Coord{X: 10}}

	clearPower := clearAtt.ComputeReception(rx, tx, arrival).PowerDbm
	wallPower := wallAtt.ComputeReception(rx, tx, arrival).PowerDbm
	assert.Less(t, wallPower, clearPower)
}
