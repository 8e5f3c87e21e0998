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

import "math"

// The fixed catalog, constructed once at program start. Catalog membership is
// open: user code may construct and Add additional materials. No invariant
// enforces physical realism.
var (
	Vacuum    = New("vacuum", math.NaN(), 1, 1)
	Air       = New("air", math.NaN(), 1.00058986, 1.00000037)
	Copper    = New("copper", 1.68, math.NaN(), math.NaN())
	Aluminium = New("aluminium", 2.65, math.NaN(), math.NaN())
	Wood      = New("wood", 1e15, 5, 1.00000043)
	Brick     = New("brick", 3e3, 4.5, 1)
	Concrete  = New("concrete", 1e2, 4.5, 1)
	Glass     = New("glass", 1e12, 7, 1)
)

var catalog = map[string]*Material{}

func init() {
	for _, m := range []*Material{Vacuum, Air, Copper, Aluminium, Wood, Brick, Concrete, Glass} {
		catalog[m.name] = m
	}
}

// Get looks a material up by name. The miss is not an error.
func Get(name string) (*Material, bool) {
	m, ok := catalog[name]
	return m, ok
}

// Add registers a user-defined material, replacing any same-named entry.
func Add(m *Material) {
	catalog[m.name] = m
}
