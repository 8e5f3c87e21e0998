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
	"github.com/rfsimtools/rfsim/kernel"
	"github.com/rfsimtools/rfsim/logger"
	"github.com/rfsimtools/rfsim/types"
)

// Antenna computes directional gain. Direction is the unit vector from the
// antenna toward the peer, in world coordinates.
type Antenna interface {
	ComputeGainDb(direction geom.Coord) types.DbValue
	MaxGainDb() types.DbValue
}

// IsotropicAntenna radiates equally in all directions with unit gain.
type IsotropicAntenna struct{}

func (IsotropicAntenna) ComputeGainDb(geom.Coord) types.DbValue { return 0 }
func (IsotropicAntenna) MaxGainDb() types.DbValue               { return 0 }

// ConstantGainAntenna applies a fixed gain regardless of direction.
type ConstantGainAntenna struct {
	GainDb types.DbValue
}

func (a ConstantGainAntenna) ComputeGainDb(geom.Coord) types.DbValue { return a.GainDb }
func (a ConstantGainAntenna) MaxGainDb() types.DbValue               { return a.GainDb }

// RadioConfig is the static description of a radio attached to the medium.
// NaN analog values mean unspecified and disable the corresponding medium
// limit.
type RadioConfig struct {
	MacAddress types.MacAddress
	Mode       types.RadioMode
	Position   geom.Coord
	MaxSpeed   float64 // m/s of the position supplier, 0 for stationary
	Antenna    Antenna

	// transmitter side
	TxPowerDbm      types.DbmValue
	CenterFrequency float64 // Hz
	Bandwidth       float64 // Hz
	Bitrate         float64 // bit/s

	// receiver side
	RxSensitivityDbm        types.DbmValue
	MinInterferencePowerDbm types.DbmValue
	SnirThresholdDb         types.DbValue
}

// Radio is a participant of the radio medium. Radios are not owned by the
// medium: they have independent lifetimes and the medium references them by
// id only.
type Radio struct {
	id         types.RadioId
	medium     *RadioMedium
	mac        types.MacAddress
	mode       types.RadioMode
	antenna    Antenna
	positionFn func(at types.Time) geom.Coord
	maxSpeed   float64

	txPowerDbm      types.DbmValue
	centerFrequency float64
	bandwidth       float64
	bitrate         float64

	rxSensitivityDbm        types.DbmValue
	minInterferencePowerDbm types.DbmValue
	snirThresholdDb         types.DbValue

	// OnFrame, if set, is invoked for every frame delivered to this radio.
	OnFrame func(frame *Frame)

	receivedFrames []*Frame
}

// NewRadio builds an unattached radio; ids are assigned by AddRadio.
func NewRadio(cfg RadioConfig) *Radio {
	if cfg.Antenna == nil {
		cfg.Antenna = IsotropicAntenna{}
	}
	pos := cfg.Position
	r := &Radio{
		id:                      types.InvalidRadioId,
		mac:                     cfg.MacAddress,
		mode:                    cfg.Mode,
		antenna:                 cfg.Antenna,
		positionFn:              func(types.Time) geom.Coord { return pos },
		maxSpeed:                cfg.MaxSpeed,
		txPowerDbm:              cfg.TxPowerDbm,
		centerFrequency:         cfg.CenterFrequency,
		bandwidth:               cfg.Bandwidth,
		bitrate:                 cfg.Bitrate,
		rxSensitivityDbm:        cfg.RxSensitivityDbm,
		minInterferencePowerDbm: cfg.MinInterferencePowerDbm,
		snirThresholdDb:         cfg.SnirThresholdDb,
	}
	return r
}

func (r *Radio) Id() types.RadioId {
	return r.id
}

func (r *Radio) MacAddress() types.MacAddress {
	return r.mac
}

func (r *Radio) Mode() types.RadioMode {
	return r.mode
}

// SetMode switches the radio mode and notifies the medium.
func (r *Radio) SetMode(mode types.RadioMode) {
	r.mode = mode
	if r.medium != nil {
		r.medium.sim.Publish(kernel.SignalRadioModeChanged, r)
	}
}

// Position returns the radio position at the given time.
func (r *Radio) Position(at types.Time) geom.Coord {
	return r.positionFn(at)
}

// SetPosition moves a stationary radio and notifies the medium.
func (r *Radio) SetPosition(pos geom.Coord) {
	r.positionFn = func(types.Time) geom.Coord { return pos }
	if r.medium != nil {
		r.medium.sim.Publish(kernel.SignalRadioPositionChanged, r)
	}
}

// SetPositionSupplier installs a time-dependent position source, e.g. for a
// moving radio. maxSpeed bounds the supplier's velocity; NaN disables the
// movement slack in the range filters.
func (r *Radio) SetPositionSupplier(fn func(at types.Time) geom.Coord, maxSpeed float64) {
	logger.AssertNotNil(fn)
	r.positionFn = fn
	r.maxSpeed = maxSpeed
	if r.medium != nil {
		r.medium.sim.Publish(kernel.SignalRadioPositionChanged, r)
	}
}

func (r *Radio) MaxSpeed() float64 {
	return r.maxSpeed
}

func (r *Radio) Antenna() Antenna {
	return r.antenna
}

// CreateListening builds this radio's listening for a time window.
func (r *Radio) CreateListening(start, end types.Time) *Listening {
	return &Listening{
		StartTime:       start,
		EndTime:         end,
		CenterFrequency: r.centerFrequency,
		Bandwidth:       r.bandwidth,
	}
}

// transmissionDuration derives the airtime of a packet from the radio
// bitrate.
func (r *Radio) transmissionDuration(packet *MacPacket) types.Duration {
	if r.bitrate <= 0 || math.IsNaN(r.bitrate) {
		return 0
	}
	seconds := float64(packet.BitLength) / r.bitrate
	return types.Duration(math.Round(seconds * float64(types.Second)))
}

// DeliverEvent implements kernel.Target; the kernel hands over frames that
// were scheduled with SendDirect.
func (r *Radio) DeliverEvent(ev *kernel.Event) {
	frame, ok := ev.Payload.(*Frame)
	if !ok {
		logger.Panicf("radio %d cannot process event payload %T: %v", r.id, ev.Payload, types.ErrNotApplicable)
		return
	}
	r.receivedFrames = append(r.receivedFrames, frame)
	if r.OnFrame != nil {
		r.OnFrame(frame)
	}
}

// ReceivedFrames lists the frames delivered to this radio so far.
func (r *Radio) ReceivedFrames() []*Frame {
	return r.receivedFrames
}
