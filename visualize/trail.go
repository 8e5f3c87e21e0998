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

// Package visualize holds visualizer implementations for the radio medium.
package visualize

import (
	"github.com/rfsimtools/rfsim/geom"
	"github.com/rfsimtools/rfsim/medium"
	"github.com/rfsimtools/rfsim/types"
)

// TrailSegment is one retained successful-reception line.
type TrailSegment struct {
	TransmissionId types.TransmissionId
	From           geom.Coord
	To             geom.Coord
}

const defaultMaxTrailSegments = 1000

// CommunicationVisualizer tracks the live transmissions and retains a
// bounded trail of successful receptions.
type CommunicationVisualizer struct {
	MaxTrailSegments int

	active map[types.TransmissionId]*medium.Transmission
	trail  []TrailSegment
}

func NewCommunicationVisualizer() *CommunicationVisualizer {
	return &CommunicationVisualizer{
		MaxTrailSegments: defaultMaxTrailSegments,
		active:           map[types.TransmissionId]*medium.Transmission{},
	}
}

func (v *CommunicationVisualizer) TransmissionStarted(tx *medium.Transmission) {
	v.active[tx.Id] = tx
}

func (v *CommunicationVisualizer) TransmissionEvicted(tx *medium.Transmission) {
	delete(v.active, tx.Id)
}

func (v *CommunicationVisualizer) ReceptionDecided(tx *medium.Transmission, receiver *medium.Radio, decision *medium.Decision) {
	if !decision.Successful {
		return
	}
	v.trail = append(v.trail, TrailSegment{
		TransmissionId: tx.Id,
		From:           tx.StartPosition,
		To:             receiver.Position(tx.StartTime),
	})
	if len(v.trail) > v.MaxTrailSegments {
		v.trail = v.trail[len(v.trail)-v.MaxTrailSegments:]
	}
}

// Active returns the transmissions currently on the air.
func (v *CommunicationVisualizer) Active() []*medium.Transmission {
	txs := make([]*medium.Transmission, 0, len(v.active))
	for _, tx := range v.active {
		txs = append(txs, tx)
	}
	return txs
}

// Trail returns the retained successful-reception segments.
func (v *CommunicationVisualizer) Trail() []TrailSegment {
	return v.trail
}
