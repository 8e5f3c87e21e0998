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

// Package mactable implements a VLAN-partitioned MAC address learning table
// with aging, per-port flush and port remapping.
package mactable

import (
	"github.com/rfsimtools/rfsim/logger"
	"github.com/rfsimtools/rfsim/types"
)

type entry struct {
	vlan          uint
	port          int
	insertionTime types.Time
}

type addressTable map[types.MacAddress]*entry

// AddressTable is the learning bridge table. It is not safe for concurrent
// use; the simulation core is single-threaded cooperative.
type AddressTable struct {
	agingTime types.Duration
	now       func() types.Time
	vlans     map[uint]addressTable
}

// New creates a table with the given aging time, reading the current time
// from now. The table for VLAN 0 is pre-created and never dropped.
func New(agingTime types.Duration, now func() types.Time) *AddressTable {
	logger.AssertNotNil(now)
	return &AddressTable{
		agingTime: agingTime,
		now:       now,
		vlans:     map[uint]addressTable{0: {}},
	}
}

// stale reports whether e has reached its aging deadline; the boundary is
// exclusive, an entry aged exactly agingTime is gone.
func (t *AddressTable) stale(e *entry) bool {
	return t.now()-e.insertionTime >= t.agingTime
}

// Lookup returns the port for address on vlan. Aged entries are removed
// eagerly. The miss is not an error.
func (t *AddressTable) Lookup(address types.MacAddress, vlan uint) (int, bool) {
	table, ok := t.vlans[vlan]
	if !ok {
		return 0, false
	}
	e, ok := table[address]
	if !ok {
		return 0, false
	}
	if t.stale(e) {
		delete(table, address)
		return 0, false
	}
	return e.port, true
}

// Learn inserts or refreshes the entry for address on vlan. Broadcast is
// never inserted. Returns true iff the entry existed before the call.
func (t *AddressTable) Learn(port int, address types.MacAddress, vlan uint) bool {
	if address.IsBroadcast() {
		return false
	}
	table, ok := t.vlans[vlan]
	if !ok {
		table = addressTable{}
		t.vlans[vlan] = table
	}
	e, existed := table[address]
	if existed {
		e.port = port
		e.insertionTime = t.now()
	} else {
		table[address] = &entry{vlan: vlan, port: port, insertionTime: t.now()}
	}
	return existed
}

// FlushPort removes all entries learned on port, across all VLANs.
func (t *AddressTable) FlushPort(port int) {
	for _, table := range t.vlans {
		for addr, e := range table {
			if e.port == port {
				delete(table, addr)
			}
		}
	}
}

// RemapPort rewrites every entry with port from to port to, used when ports
// are renumbered.
func (t *AddressTable) RemapPort(from, to int) {
	for _, table := range t.vlans {
		for _, e := range table {
			if e.port == from {
				e.port = to
			}
		}
	}
}

// Expire removes all aged entries of one VLAN.
func (t *AddressTable) Expire(vlan uint) {
	table, ok := t.vlans[vlan]
	if !ok {
		return
	}
	for addr, e := range table {
		if t.stale(e) {
			delete(table, addr)
		}
	}
}

// ExpireAll removes all aged entries across all VLANs.
func (t *AddressTable) ExpireAll() {
	for vlan := range t.vlans {
		t.Expire(vlan)
	}
}

// Size returns the total number of live entries; aged but not yet collected
// entries count until a lookup or expiry touches them.
func (t *AddressTable) Size() int {
	n := 0
	for _, table := range t.vlans {
		n += len(table)
	}
	return n
}
