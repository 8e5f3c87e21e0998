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
	"github.com/rfsimtools/rfsim/logger"
	"github.com/rfsimtools/rfsim/types"
)

// receptionCacheEntry caches the intermediate computation results of one
// (transmission, radio) pair. Slots are filled lazily, top-down: arrival
// before listening before reception before interference before decisions.
// Decisions (and the interference they derive from) may be invalidated by a
// later transmission; arrival, listening and reception are never invalidated.
type receptionCacheEntry struct {
	frame        *Frame
	arrival      *Arrival
	listening    *Listening
	reception    *Reception
	interference *Interference
	syncDecision *Decision
	recvDecision *Decision
}

// transmissionCacheEntry is one cache row: a live transmission plus its
// per-radio reception entries, indexed by radio id offset.
type transmissionCacheEntry struct {
	transmission *Transmission
	// interferenceEndTime is the last moment this transmission may have any
	// effect on other transmissions by interfering with them.
	interferenceEndTime   types.Time
	receptionCacheEntries []*receptionCacheEntry
}

// transmissionCacheEntryFor returns the cache row of a live transmission, or
// nil when the transmission was already evicted.
func (m *RadioMedium) transmissionCacheEntryFor(tx *Transmission) *transmissionCacheEntry {
	idx := tx.Id - m.baseTransmissionId
	if idx < 0 || idx >= len(m.cache) {
		return nil
	}
	return m.cache[idx]
}

// receptionCacheEntryFor returns the (transmission, radio) cell, allocating
// it on first use. Returns nil for evicted transmissions.
func (m *RadioMedium) receptionCacheEntryFor(r *Radio, tx *Transmission) *receptionCacheEntry {
	row := m.transmissionCacheEntryFor(tx)
	if row == nil {
		return nil
	}
	idx := r.Id() - m.baseRadioId
	logger.AssertTrue(idx >= 0, "radio id below cache base")
	for idx >= len(row.receptionCacheEntries) {
		row.receptionCacheEntries = append(row.receptionCacheEntries, nil)
	}
	if row.receptionCacheEntries[idx] == nil {
		row.receptionCacheEntries[idx] = &receptionCacheEntry{}
	}
	return row.receptionCacheEntries[idx]
}
