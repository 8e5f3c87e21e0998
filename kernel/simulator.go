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

// Package kernel provides the discrete-event primitives the radio medium
// consumes: a monotone simulated clock, cancellable scheduled events,
// point-to-point delivery, and a small signal bus for radio state changes.
package kernel

import (
	"container/heap"

	"github.com/rfsimtools/rfsim/logger"
	"github.com/rfsimtools/rfsim/types"
)

// Target receives events scheduled for it.
type Target interface {
	DeliverEvent(ev *Event)
}

// Event is a scheduled delivery. Payload is opaque to the kernel.
type Event struct {
	Timestamp types.Time
	Target    Target
	Payload   interface{}

	seq       uint64
	index     int
	cancelled bool
}

// Cancelled reports whether the event was cancelled before delivery.
func (e *Event) Cancelled() bool {
	return e.cancelled
}

// Simulator owns the simulated clock and the pending event set. All
// execution is single-threaded cooperative: events run to completion in
// timestamp order.
type Simulator struct {
	now     types.Time
	q       eventQueue
	nextSeq uint64

	listeners map[Signal][]func(arg interface{})
}

func New() *Simulator {
	return &Simulator{listeners: map[Signal][]func(arg interface{}){}}
}

// Now returns the current simulated time.
func (s *Simulator) Now() types.Time {
	return s.now
}

// ScheduleAt enqueues an event for target at absolute time t, which must not
// lie in the past.
func (s *Simulator) ScheduleAt(t types.Time, target Target, payload interface{}) *Event {
	logger.AssertTrue(t >= s.now, "scheduling into the past")
	logger.AssertNotNil(target)
	ev := &Event{Timestamp: t, Target: target, Payload: payload, seq: s.nextSeq}
	s.nextSeq++
	heap.Push(&s.q, ev)
	return ev
}

// SendDirect schedules a point-to-point delivery to target after delay.
// Deliveries to the same target keep their send order when delays coincide.
func (s *Simulator) SendDirect(delay types.Duration, target Target, payload interface{}) *Event {
	return s.ScheduleAt(s.now+delay, target, payload)
}

// Cancel discards a pending event. Cancelling an already delivered or
// already cancelled event is a no-op.
func (s *Simulator) Cancel(ev *Event) {
	if ev == nil || ev.cancelled || ev.index < 0 {
		return
	}
	ev.cancelled = true
	heap.Remove(&s.q, ev.index)
	ev.index = -1
}

// CancelAllFor discards every pending event addressed to target, honoring
// "target gone" on radio removal.
func (s *Simulator) CancelAllFor(target Target) {
	for _, ev := range s.q {
		if ev.Target == target {
			ev.cancelled = true
		}
	}
	live := s.q[:0]
	for _, ev := range s.q {
		if !ev.cancelled {
			live = append(live, ev)
		}
	}
	for i := len(live); i < len(s.q); i++ {
		s.q[i] = nil
	}
	s.q = live
	for i := range s.q {
		s.q[i].index = i
	}
	heap.Init(&s.q)
}

// RunUntil delivers all events with Timestamp <= t in order and leaves the
// clock at t.
func (s *Simulator) RunUntil(t types.Time) {
	for len(s.q) > 0 && s.q[0].Timestamp <= t {
		ev := heap.Pop(&s.q).(*Event)
		ev.index = -1
		s.now = ev.Timestamp
		ev.Target.DeliverEvent(ev)
	}
	if t > s.now {
		s.now = t
	}
}

// Run delivers all pending events and leaves the clock at the last event
// time.
func (s *Simulator) Run() {
	for len(s.q) > 0 {
		ev := heap.Pop(&s.q).(*Event)
		ev.index = -1
		s.now = ev.Timestamp
		ev.Target.DeliverEvent(ev)
	}
}

// PendingCount returns the number of undelivered events.
func (s *Simulator) PendingCount() int {
	return len(s.q)
}

// Signal identifies a radio state change published on the bus.
type Signal int

const (
	SignalRadioModeChanged Signal = iota
	SignalRadioPositionChanged
	SignalRadioAdded
	SignalRadioRemoved
)

// Subscribe registers a listener for sig.
func (s *Simulator) Subscribe(sig Signal, fn func(arg interface{})) {
	s.listeners[sig] = append(s.listeners[sig], fn)
}

// Publish synchronously notifies all listeners of sig.
func (s *Simulator) Publish(sig Signal, arg interface{}) {
	for _, fn := range s.listeners[sig] {
		fn(arg)
	}
}
