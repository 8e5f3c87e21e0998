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

// Package material holds the catalog of electromagnetic materials consumed by
// the obstacle loss computation.
package material

import (
	"math"

	"github.com/rfsimtools/rfsim/types"
)

// Material is an immutable named record of electromagnetic properties. Any
// field may be NaN meaning the material is not characterized for it; NaN
// propagates silently through the derived values.
type Material struct {
	name                 string
	resistivity          float64 // Ohm*m
	relativePermittivity float64
	relativePermeability float64
}

func New(name string, resistivity, relativePermittivity, relativePermeability float64) *Material {
	return &Material{
		name:                 name,
		resistivity:          resistivity,
		relativePermittivity: relativePermittivity,
		relativePermeability: relativePermeability,
	}
}

func (m *Material) Name() string {
	return m.name
}

func (m *Material) Resistivity() float64 {
	return m.resistivity
}

func (m *Material) RelativePermittivity() float64 {
	return m.relativePermittivity
}

func (m *Material) RelativePermeability() float64 {
	return m.relativePermeability
}

// DielectricLossTangent returns the loss tangent at frequency (Hz).
func (m *Material) DielectricLossTangent(frequency float64) float64 {
	return 1.0 / (2 * math.Pi * frequency * m.resistivity * m.relativePermittivity * types.VacuumPermittivity)
}

// RefractiveIndex returns sqrt(relativePermittivity * relativePermeability).
func (m *Material) RefractiveIndex() float64 {
	return math.Sqrt(m.relativePermittivity * m.relativePermeability)
}

// PropagationSpeed returns the signal propagation speed in the material, m/s.
func (m *Material) PropagationSpeed() float64 {
	return types.SpeedOfLight / m.RefractiveIndex()
}
