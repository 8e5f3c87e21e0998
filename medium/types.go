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

// Package medium implements the wireless radio medium: it registers radios,
// records transmissions, filters potential receivers, schedules frame
// deliveries and computes receptions, interference and reception decisions,
// backed by a two-dimensional computation cache keyed by (transmission,
// radio).
package medium

import (
	"github.com/rfsimtools/rfsim/geom"
	"github.com/rfsimtools/rfsim/types"
)

// MacPacket is the payload handed to the medium by a transmitting radio.
type MacPacket struct {
	Source      types.MacAddress
	Destination types.MacAddress
	BitLength   int
	Payload     []byte
}

// Transmission is the immutable descriptor of an ongoing transmission.
type Transmission struct {
	Id            types.TransmissionId
	TransmitterId types.RadioId
	StartTime     types.Time
	EndTime       types.Time
	Duration      types.Duration
	StartPosition geom.Coord
	EndPosition   geom.Coord

	// analog parameters
	PowerDbm        types.DbmValue
	CenterFrequency float64 // Hz
	Bandwidth       float64 // Hz
	Bitrate         float64 // bit/s

	// TransmitterAntenna is captured at transmit time so that removing the
	// transmitter radio cannot dangle the attenuation computation.
	TransmitterAntenna Antenna

	Packet *MacPacket
}

// Frame is what travels from the medium to a receiver radio; the receiver
// hands it back to the medium to obtain a decision.
type Frame struct {
	Transmission *Transmission
}

// Arrival describes when and where a transmission reaches a receiver,
// accounting for receiver motion during reception.
type Arrival struct {
	StartTime     types.Time
	EndTime       types.Time
	StartPosition geom.Coord
	EndPosition   geom.Coord
}

// Listening is a receiver's declared intent to accept signals of a given
// band during a time window.
type Listening struct {
	StartTime       types.Time
	EndTime         types.Time
	CenterFrequency float64
	Bandwidth       float64
}

// Reception is the signal a receiver observes for one transmission.
type Reception struct {
	ReceiverId     types.RadioId
	TransmissionId types.TransmissionId
	StartTime      types.Time
	EndTime        types.Time
	PowerDbm       types.DbmValue
}

// Interference is the composite of background noise and the other receptions
// overlapping a listening window. Other transmissions are referenced by id,
// never by owning pointer.
type Interference struct {
	PowerDbm        types.DbmValue
	TransmissionIds []types.TransmissionId
}

// Decision is the outcome of a synchronization or reception attempt.
type Decision struct {
	Attempted  bool
	Successful bool
	SnirDb     types.DbValue
}

// ListeningDecision is the outcome of a listen-on-medium query.
type ListeningDecision struct {
	Busy        bool
	MaxPowerDbm types.DbmValue
}
