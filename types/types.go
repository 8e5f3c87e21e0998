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

package types

import (
	"fmt"
	"math"
)

// Time is an absolute simulation time in nanoseconds since simulation start.
type Time = uint64

// Duration is a time span in nanoseconds.
type Duration = uint64

const (
	TimeNever Time = math.MaxUint64

	Nanosecond  Duration = 1
	Microsecond Duration = 1000 * Nanosecond
	Millisecond Duration = 1000 * Microsecond
	Second      Duration = 1000 * Millisecond
)

type RadioId = int
type TransmissionId = int

const (
	InvalidRadioId        RadioId        = -1
	InvalidTransmissionId TransmissionId = -1
)

// DbValue is a relative power or gain value in dB.
type DbValue = float64

// DbmValue is an absolute power value in dBm.
type DbmValue = float64

const (
	// SpeedOfLight is the signal propagation speed in vacuum, in m/s.
	SpeedOfLight = 299792458.0

	// VacuumPermittivity is the electric constant e0, in F/m.
	VacuumPermittivity = 8.854187817e-12
)

// RadioMode is the operational mode of a radio attached to the medium.
type RadioMode byte

const (
	RadioModeOff RadioMode = iota
	RadioModeReceiver
	RadioModeTransmitter
	RadioModeTransceiver
)

func (m RadioMode) String() string {
	switch m {
	case RadioModeOff:
		return "off"
	case RadioModeReceiver:
		return "receiver"
	case RadioModeTransmitter:
		return "transmitter"
	case RadioModeTransceiver:
		return "transceiver"
	default:
		return "invalid"
	}
}

// CanReceive returns whether a radio in this mode is able to receive frames.
func (m RadioMode) CanReceive() bool {
	return m == RadioModeReceiver || m == RadioModeTransceiver
}

// CanTransmit returns whether a radio in this mode is able to transmit frames.
func (m RadioMode) CanTransmit() bool {
	return m == RadioModeTransmitter || m == RadioModeTransceiver
}

// RangeFilterMode restricts which radios are considered potential receivers
// of a transmission.
type RangeFilterMode byte

const (
	RangeFilterAnywhere RangeFilterMode = iota
	RangeFilterInterferenceRange
	RangeFilterCommunicationRange
)

func (f RangeFilterMode) String() string {
	switch f {
	case RangeFilterAnywhere:
		return "anywhere"
	case RangeFilterInterferenceRange:
		return "interferenceRange"
	case RangeFilterCommunicationRange:
		return "communicationRange"
	default:
		return "invalid"
	}
}

func ParseRangeFilterMode(s string) (RangeFilterMode, error) {
	switch s {
	case "", "anywhere":
		return RangeFilterAnywhere, nil
	case "interferenceRange":
		return RangeFilterInterferenceRange, nil
	case "communicationRange":
		return RangeFilterCommunicationRange, nil
	default:
		return RangeFilterAnywhere, fmt.Errorf("unknown range filter mode %q", s)
	}
}
