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

import "github.com/rfsimtools/rfsim/types"

// Config are the options that control the behavior of the radio medium.
type Config struct {
	// RangeFilter restricts potential receivers: "anywhere",
	// "interferenceRange" or "communicationRange".
	RangeFilter string `yaml:"rangeFilter"`
	// RadioModeFilter drops receivers not in receiver or transceiver mode.
	RadioModeFilter bool `yaml:"radioModeFilter"`
	// ListeningFilter drops receivers whose listening is incompatible with
	// the transmission.
	ListeningFilter bool `yaml:"listeningFilter"`
	// MacAddressFilter drops unicast frames whose destination differs from
	// the receiver MAC.
	MacAddressFilter bool `yaml:"macAddressFilter"`

	// RecordCommunicationLog appends one line per tx/rx event to
	// <resultDir>/<configName>-<runNumber>.tlog.
	RecordCommunicationLog bool   `yaml:"recordCommunicationLog"`
	ResultDir              string `yaml:"resultDir"`
	ConfigName             string `yaml:"configName"`
	RunNumber              int    `yaml:"runNumber"`

	// DisplayCommunication feeds live transmissions to the visualizer;
	// LeaveCommunicationTrail retains successful-reception segments.
	DisplayCommunication    bool `yaml:"displayCommunication"`
	LeaveCommunicationTrail bool `yaml:"leaveCommunicationTrail"`

	// MinInterferenceTime is the minimum time overlap for two transmissions
	// to interfere, in nanoseconds.
	MinInterferenceTime types.Duration `yaml:"minInterferenceTime"`
	// MaxInterferenceWindow overrides how long past its end a transmission
	// stays interference-relevant; 0 derives it from the medium limits.
	MaxInterferenceWindow types.Duration `yaml:"maxInterferenceWindow"`

	// MaxCommunicationRange and MaxInterferenceRange override the ranges
	// derived from the path loss model; 0 derives them.
	MaxCommunicationRange float64 `yaml:"maxCommunicationRange"`
	MaxInterferenceRange  float64 `yaml:"maxInterferenceRange"`
}

func (c *Config) rangeFilterMode() (types.RangeFilterMode, error) {
	return types.ParseRangeFilterMode(c.RangeFilter)
}
