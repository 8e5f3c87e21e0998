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

package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfsimtools/rfsim/types"
)

type recordingTarget struct {
	delivered []interface{}
	times     []types.Time
	sim       *Simulator
}

func (r *recordingTarget) DeliverEvent(ev *Event) {
	r.delivered = append(r.delivered, ev.Payload)
	if r.sim != nil {
		r.times = append(r.times, r.sim.Now())
	}
}

func TestEventsDeliverInTimestampOrder(t *testing.T) {
	sim := New()
	tgt := &recordingTarget{sim: sim}

	sim.ScheduleAt(300, tgt, "c")
	sim.ScheduleAt(100, tgt, "a")
	sim.ScheduleAt(200, tgt, "b")
	sim.Run()

	assert.Equal(t, []interface{}{"a", "b", "c"}, tgt.delivered)
	assert.Equal(t, []types.Time{100, 200, 300}, tgt.times)
	assert.Equal(t, types.Time(300), sim.Now())
}

func TestSameTimeEventsKeepSendOrder(t *testing.T) {
	sim := New()
	tgt := &recordingTarget{}

	sim.SendDirect(50, tgt, 1)
	sim.SendDirect(50, tgt, 2)
	sim.SendDirect(50, tgt, 3)
	sim.Run()

	assert.Equal(t, []interface{}{1, 2, 3}, tgt.delivered)
}

func TestRunUntilAdvancesClock(t *testing.T) {
	sim := New()
	tgt := &recordingTarget{}

	sim.ScheduleAt(100, tgt, "x")
	sim.ScheduleAt(900, tgt, "y")
	sim.RunUntil(500)

	assert.Equal(t, []interface{}{"x"}, tgt.delivered)
	assert.Equal(t, types.Time(500), sim.Now())
	assert.Equal(t, 1, sim.PendingCount())
}

func TestCancel(t *testing.T) {
	sim := New()
	tgt := &recordingTarget{}

	ev := sim.ScheduleAt(100, tgt, "x")
	sim.ScheduleAt(200, tgt, "y")
	sim.Cancel(ev)
	sim.Cancel(ev) // no-op
	sim.Run()

	assert.True(t, ev.Cancelled())
	assert.Equal(t, []interface{}{"y"}, tgt.delivered)
}

func TestCancelAllFor(t *testing.T) {
	sim := New()
	a := &recordingTarget{}
	b := &recordingTarget{}

	sim.ScheduleAt(100, a, 1)
	sim.ScheduleAt(150, b, 2)
	sim.ScheduleAt(200, a, 3)
	sim.CancelAllFor(a)
	sim.Run()

	assert.Empty(t, a.delivered)
	assert.Equal(t, []interface{}{2}, b.delivered)
}

func TestSignals(t *testing.T) {
	sim := New()
	var got []interface{}
	sim.Subscribe(SignalRadioModeChanged, func(arg interface{}) {
		got = append(got, arg)
	})
	sim.Publish(SignalRadioModeChanged, 7)
	sim.Publish(SignalRadioPositionChanged, 8) // no listener
	assert.Equal(t, []interface{}{7}, got)
}
