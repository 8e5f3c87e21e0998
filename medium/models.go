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

	"github.com/rfsimtools/rfsim/geom"
	"github.com/rfsimtools/rfsim/logger"
	"github.com/rfsimtools/rfsim/prng"
	"github.com/rfsimtools/rfsim/types"
)

// Propagation computes when and where a transmission reaches a receiver.
type Propagation interface {
	ComputeArrival(tx *Transmission, receiver *Radio) *Arrival
	MaxPropagationDelay() types.Duration
}

// ConstantSpeedPropagation propagates signals at a fixed speed, by default
// the speed of light in vacuum.
type ConstantSpeedPropagation struct {
	Speed    float64 // m/s
	MaxDelay types.Duration
}

func NewConstantSpeedPropagation() *ConstantSpeedPropagation {
	return &ConstantSpeedPropagation{Speed: types.SpeedOfLight, MaxDelay: types.Millisecond}
}

func (p *ConstantSpeedPropagation) MaxPropagationDelay() types.Duration {
	return p.MaxDelay
}

func (p *ConstantSpeedPropagation) delay(from, to geom.Coord) types.Duration {
	seconds := from.Distance(to) / p.Speed
	return types.Duration(math.Round(seconds * float64(types.Second)))
}

func (p *ConstantSpeedPropagation) ComputeArrival(tx *Transmission, receiver *Radio) *Arrival {
	startDelay := p.delay(tx.StartPosition, receiver.Position(tx.StartTime))
	endDelay := p.delay(tx.EndPosition, receiver.Position(tx.EndTime))
	startTime := tx.StartTime + startDelay
	endTime := tx.EndTime + endDelay
	return &Arrival{
		StartTime:     startTime,
		EndTime:       endTime,
		StartPosition: receiver.Position(startTime),
		EndPosition:   receiver.Position(endTime),
	}
}

// PathLoss computes the average attenuation of a signal over distance.
type PathLoss interface {
	// ComputePathLossDb returns the loss in dB (>= 0) at the given carrier
	// frequency (Hz) and distance (m).
	ComputePathLossDb(frequency, distance float64) types.DbValue
	// ComputeRange inverts the model: the distance at which the loss reaches
	// lossDb. NaN inputs propagate.
	ComputeRange(frequency float64, lossDb types.DbValue) float64
}

// FreeSpacePathLoss is the Friis transmission equation generalized with a
// path loss exponent alpha and a system loss.
type FreeSpacePathLoss struct {
	Alpha        float64
	SystemLossDb types.DbValue
}

func NewFreeSpacePathLoss() *FreeSpacePathLoss {
	return &FreeSpacePathLoss{Alpha: 2}
}

func (m *FreeSpacePathLoss) ComputePathLossDb(frequency, distance float64) types.DbValue {
	if distance <= 0 {
		return 0
	}
	loss := 10*m.Alpha*math.Log10(4*math.Pi*distance*frequency/types.SpeedOfLight) + m.SystemLossDb
	return math.Max(loss, 0)
}

func (m *FreeSpacePathLoss) ComputeRange(frequency float64, lossDb types.DbValue) float64 {
	return types.SpeedOfLight / (4 * math.Pi * frequency) *
		math.Pow(10, (lossDb-m.SystemLossDb)/(10*m.Alpha))
}

// LogDistancePathLoss is the exponent model with a fixed loss offset, in the
// shape of the ITU indoor and 3GPP TR 38.901 indoor-office parameter sets.
type LogDistancePathLoss struct {
	ExponentDb  types.DbValue // loss slope per decade of distance
	FixedLossDb types.DbValue
}

func (m *LogDistancePathLoss) ComputePathLossDb(frequency, distance float64) types.DbValue {
	if distance < 0.01 {
		return 0
	}
	return math.Max(m.ExponentDb*math.Log10(distance)+m.FixedLossDb, 0)
}

func (m *LogDistancePathLoss) ComputeRange(frequency float64, lossDb types.DbValue) float64 {
	return math.Pow(10, (lossDb-m.FixedLossDb)/m.ExponentDb)
}

// BackgroundNoise yields the noise power observed during a listening.
type BackgroundNoise interface {
	ComputeNoiseDbm(listening *Listening) types.DbmValue
}

// IsotropicBackgroundNoise is a constant noise floor everywhere.
type IsotropicBackgroundNoise struct {
	PowerDbm types.DbmValue
}

func (n *IsotropicBackgroundNoise) ComputeNoiseDbm(*Listening) types.DbmValue {
	return n.PowerDbm
}

// Attenuation composes path loss, obstacle loss, antenna gain and fading
// into the reception a radio observes, and judges listening compatibility.
type Attenuation interface {
	ComputeReception(receiver *Radio, tx *Transmission, arrival *Arrival) *Reception
	IsListeningCompatible(listening *Listening, tx *Transmission) bool
}

// ScalarAttenuation models the signal as a flat power over the occupied
// band. ObstacleLoss and Fading are optional.
type ScalarAttenuation struct {
	PathLoss     PathLoss
	ObstacleLoss ObstacleLoss
	Fading       *prng.ShadowFading
}

func (a *ScalarAttenuation) ComputeReception(receiver *Radio, tx *Transmission, arrival *Arrival) *Reception {
	logger.AssertNotNil(a.PathLoss)
	txPos := tx.StartPosition
	rxPos := arrival.StartPosition
	distance := txPos.Distance(rxPos)

	power := tx.PowerDbm
	txAntenna := tx.TransmitterAntenna
	if txAntenna == nil {
		txAntenna = IsotropicAntenna{}
	}
	if distance > 0 {
		direction := rxPos.Sub(txPos).Mul(1 / distance)
		power += txAntenna.ComputeGainDb(direction)
		power += receiver.Antenna().ComputeGainDb(direction.Mul(-1))
	} else {
		power += txAntenna.MaxGainDb() + receiver.Antenna().MaxGainDb()
	}
	power -= a.PathLoss.ComputePathLossDb(tx.CenterFrequency, distance)
	if a.ObstacleLoss != nil {
		power -= a.ObstacleLoss.ComputeObstacleLossDb(tx.CenterFrequency, geom.LineSegment{P0: txPos, P1: rxPos})
	}
	if a.Fading != nil {
		power -= a.Fading.ComputeFadingDb(txPos, rxPos)
	}
	return &Reception{
		ReceiverId:     receiver.Id(),
		TransmissionId: tx.Id,
		StartTime:      arrival.StartTime,
		EndTime:        arrival.EndTime,
		PowerDbm:       power,
	}
}

// IsListeningCompatible requires the transmission band to fall inside the
// listening band.
func (a *ScalarAttenuation) IsListeningCompatible(listening *Listening, tx *Transmission) bool {
	lo := listening.CenterFrequency - listening.Bandwidth/2
	hi := listening.CenterFrequency + listening.Bandwidth/2
	return tx.CenterFrequency-tx.Bandwidth/2 >= lo && tx.CenterFrequency+tx.Bandwidth/2 <= hi
}

// NeighborCache optionally takes over the iteration of potential receivers.
type NeighborCache interface {
	AddRadio(radio *Radio)
	RemoveRadio(radio *Radio)
	// SendToNeighbors calls send for every cached candidate receiver; the
	// medium still applies its receiver filters inside send.
	SendToNeighbors(transmitter *Radio, frame *Frame, send func(receiver *Radio))
}

// LinearNeighborCache is the grid-free implementation: a plain list scan.
type LinearNeighborCache struct {
	radios []*Radio
}

func (c *LinearNeighborCache) AddRadio(radio *Radio) {
	c.radios = append(c.radios, radio)
}

func (c *LinearNeighborCache) RemoveRadio(radio *Radio) {
	for i, r := range c.radios {
		if r == radio {
			c.radios = append(c.radios[:i], c.radios[i+1:]...)
			return
		}
	}
}

func (c *LinearNeighborCache) SendToNeighbors(transmitter *Radio, frame *Frame, send func(receiver *Radio)) {
	for _, r := range c.radios {
		if r != transmitter {
			send(r)
		}
	}
}
