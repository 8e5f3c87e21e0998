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

// Package prng provides the deterministic per-link random processes used by
// the radio models.
package prng

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rfsimtools/rfsim/geom"
)

// ShadowFading models a fixed, position-dependent signal attenuation (>0) or
// increase (<0) in dB due to multipath and static obstacles. Each unique
// link gets a reproducible draw from a normal distribution (mu=0, sigma);
// reversing transmitter and receiver yields the same value.
type ShadowFading struct {
	seed    uint64
	sigmaDb float64
	cache   map[uint64]float64
}

func NewShadowFading(seed uint64, sigmaDb float64) *ShadowFading {
	return &ShadowFading{
		seed:    seed,
		sigmaDb: sigmaDb,
		cache:   make(map[uint64]float64),
	}
}

// ComputeFadingDb returns the shadow fading of the link between two
// positions, in dB.
func (sf *ShadowFading) ComputeFadingDb(src, dst geom.Coord) float64 {
	uid := linkUID(src, dst)
	if v, ok := sf.cache[uid]; ok {
		return v
	}
	n := distuv.Normal{Mu: 0, Sigma: sf.sigmaDb, Src: rand.NewSource(sf.seed ^ uid)}
	v := n.Rand()
	sf.cache[uid] = v
	return v
}

// linkUID gives each link a position-derived identity, symmetric in its
// endpoints. Positions are quantized to a 5 m grid.
func linkUID(a, b geom.Coord) uint64 {
	x1, y1 := quantize(a.X), quantize(a.Y)
	x2, y2 := quantize(b.X), quantize(b.Y)
	// order endpoints left-most first so the link is symmetric
	if x1 > x2 || (x1 == x2 && y1 > y2) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	return uint64(x1) | uint64(y1)<<16 | uint64(x2)<<32 | uint64(y2)<<48
}

func quantize(v float64) uint16 {
	return uint16(math.Round(v*0.2) + 32768)
}
