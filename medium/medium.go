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

	"gonum.org/v1/gonum/floats"

	"github.com/rfsimtools/rfsim/kernel"
	"github.com/rfsimtools/rfsim/logger"
	"github.com/rfsimtools/rfsim/types"
)

// mediumLimits are extrema over the current radio population. Any
// unspecified input yields a NaN bound, which disables the corresponding
// receiver filter.
type mediumLimits struct {
	maxSpeed                float64
	maxTransmissionPowerDbm types.DbmValue
	minInterferencePowerDbm types.DbmValue
	minReceptionPowerDbm    types.DbmValue
	maxAntennaGainDb        types.DbValue
	minInterferenceTime     types.Duration
	maxTransmissionDuration types.Duration
	maxCommunicationRange   float64
	maxInterferenceRange    float64
}

// maxFrameBits bounds the frame size used to derive maxTransmissionDuration
// from the slowest radio bitrate.
const maxFrameBits = 4096 * 8

// evictionTimerMsg is the payload of the one self-timer the medium keeps
// outstanding.
type evictionTimerMsg struct{}

// RadioMedium is the heart of the simulator core. It owns the transmissions,
// the cache matrix and all derived computation results; radios are
// referenced by id and never owned.
type RadioMedium struct {
	sim *kernel.Simulator
	cfg Config

	propagation     Propagation
	attenuation     Attenuation
	backgroundNoise BackgroundNoise
	neighborCache   NeighborCache
	pathLoss        PathLoss
	vis             Visualizer

	rangeFilter types.RangeFilterMode

	radios      []*Radio // indexed by id - baseRadioId; removed radios leave nil
	baseRadioId types.RadioId

	transmissions      []*Transmission // live, ordered by id
	baseTransmissionId types.TransmissionId
	nextTransmissionId types.TransmissionId

	cache []*transmissionCacheEntry

	limits        mediumLimits
	evictionTimer *kernel.Event

	commLog *communicationLog
	stats   Statistics
}

// Models bundles the pluggable models of a medium. Propagation, PathLoss and
// Attenuation are required; the rest is optional.
type Models struct {
	Propagation     Propagation
	PathLoss        PathLoss
	Attenuation     Attenuation
	BackgroundNoise BackgroundNoise
	NeighborCache   NeighborCache
	Visualizer      Visualizer
}

func NewRadioMedium(sim *kernel.Simulator, cfg Config, models Models) (*RadioMedium, error) {
	rangeFilter, err := cfg.rangeFilterMode()
	if err != nil {
		return nil, err
	}
	logger.AssertNotNil(models.Propagation, "propagation model is required")
	logger.AssertNotNil(models.PathLoss, "path loss model is required")
	logger.AssertNotNil(models.Attenuation, "attenuation model is required")
	m := &RadioMedium{
		sim:             sim,
		cfg:             cfg,
		propagation:     models.Propagation,
		pathLoss:        models.PathLoss,
		attenuation:     models.Attenuation,
		backgroundNoise: models.BackgroundNoise,
		neighborCache:   models.NeighborCache,
		vis:             models.Visualizer,
		rangeFilter:     rangeFilter,
	}
	if m.vis == nil {
		m.vis = nopVisualizer{}
	}
	if cfg.RecordCommunicationLog {
		if m.commLog, err = openCommunicationLog(cfg.ResultDir, cfg.ConfigName, cfg.RunNumber); err != nil {
			return nil, err
		}
	}
	sim.Subscribe(kernel.SignalRadioModeChanged, func(interface{}) { m.updateLimits() })
	sim.Subscribe(kernel.SignalRadioPositionChanged, func(interface{}) { m.updateLimits() })
	m.updateLimits()
	return m, nil
}

// Close flushes the communication log, if any.
func (m *RadioMedium) Close() error {
	if m.commLog == nil {
		return nil
	}
	err := m.commLog.close()
	m.commLog = nil
	return err
}

func (m *RadioMedium) Stats() Statistics {
	return m.stats
}

func (m *RadioMedium) Now() types.Time {
	return m.sim.Now()
}

// LiveTransmissions returns the ongoing transmissions, ordered by id.
func (m *RadioMedium) LiveTransmissions() []*Transmission {
	return m.transmissions
}

func (m *RadioMedium) BaseTransmissionId() types.TransmissionId {
	return m.baseTransmissionId
}

func (m *RadioMedium) CacheSize() int {
	return len(m.cache)
}

// Radios returns the attached radios; removed slots are skipped.
func (m *RadioMedium) Radios() []*Radio {
	live := make([]*Radio, 0, len(m.radios))
	for _, r := range m.radios {
		if r != nil {
			live = append(live, r)
		}
	}
	return live
}

func (m *RadioMedium) RadioById(id types.RadioId) *Radio {
	idx := id - m.baseRadioId
	if idx < 0 || idx >= len(m.radios) {
		return nil
	}
	return m.radios[idx]
}

// AddRadio attaches a radio, assigns its id and recomputes the medium
// limits.
func (m *RadioMedium) AddRadio(r *Radio) {
	logger.AssertTrue(r.id == types.InvalidRadioId, "radio already attached")
	r.id = m.baseRadioId + len(m.radios)
	r.medium = m
	m.radios = append(m.radios, r)
	if m.neighborCache != nil {
		m.neighborCache.AddRadio(r)
	}
	m.updateLimits()
	m.sim.Publish(kernel.SignalRadioAdded, r)
	logger.Debugf("radio %d attached to medium at %v", r.id, r.Position(m.Now()))
}

// RemoveRadio detaches a radio. Its cache column is dropped and pending
// deliveries to it are cancelled.
func (m *RadioMedium) RemoveRadio(r *Radio) {
	idx := r.id - m.baseRadioId
	if idx < 0 || idx >= len(m.radios) || m.radios[idx] != r {
		return
	}
	m.radios[idx] = nil
	for _, row := range m.cache {
		if idx < len(row.receptionCacheEntries) {
			row.receptionCacheEntries[idx] = nil
		}
	}
	if m.neighborCache != nil {
		m.neighborCache.RemoveRadio(r)
	}
	m.sim.CancelAllFor(r)
	m.updateLimits()
	m.sim.Publish(kernel.SignalRadioRemoved, r)
	r.medium = nil
}

// TransmitPacket records a new transmission built from the transmitter's
// current state, schedules its eviction deadline and sends the frame toward
// every potential receiver.
func (m *RadioMedium) TransmitPacket(transmitter *Radio, packet *MacPacket) *Frame {
	logger.AssertTrue(transmitter.medium == m, "transmitter not attached to this medium")
	now := m.Now()
	duration := transmitter.transmissionDuration(packet)
	tx := &Transmission{
		Id:                 m.nextTransmissionId,
		TransmitterId:      transmitter.Id(),
		StartTime:          now,
		EndTime:            now + duration,
		Duration:           duration,
		StartPosition:      transmitter.Position(now),
		EndPosition:        transmitter.Position(now + duration),
		PowerDbm:           transmitter.txPowerDbm,
		CenterFrequency:    transmitter.centerFrequency,
		Bandwidth:          transmitter.bandwidth,
		Bitrate:            transmitter.bitrate,
		TransmitterAntenna: transmitter.Antenna(),
		Packet:             packet,
	}
	m.nextTransmissionId++
	m.stats.TransmissionCount++

	row := &transmissionCacheEntry{
		transmission:        tx,
		interferenceEndTime: tx.EndTime + m.maxInterferenceWindow(),
	}
	m.transmissions = append(m.transmissions, tx)
	m.cache = append(m.cache, row)

	m.invalidateCachedDecisions(tx)
	m.scheduleEvictionTimer(row.interferenceEndTime)

	if m.commLog != nil {
		m.commLog.transmission(tx)
	}
	if m.cfg.DisplayCommunication {
		m.vis.TransmissionStarted(tx)
	}

	frame := &Frame{Transmission: tx}
	m.sendToAffectedRadios(transmitter, frame)
	return frame
}

// maxInterferenceWindow is how long past its end a transmission stays
// interference-relevant.
func (m *RadioMedium) maxInterferenceWindow() types.Duration {
	if m.cfg.MaxInterferenceWindow > 0 {
		return m.cfg.MaxInterferenceWindow
	}
	return m.propagation.MaxPropagationDelay() + m.cfg.MinInterferenceTime
}

// scheduleEvictionTimer keeps at most one removeNonInterferingTransmissions
// timer outstanding, at the earliest pending deadline.
func (m *RadioMedium) scheduleEvictionTimer(deadline types.Time) {
	if m.evictionTimer != nil {
		if m.evictionTimer.Timestamp <= deadline {
			return
		}
		m.sim.Cancel(m.evictionTimer)
	}
	m.evictionTimer = m.sim.ScheduleAt(deadline, m, evictionTimerMsg{})
}

// DeliverEvent implements kernel.Target. The medium never processes generic
// messages; it only responds to its own eviction self-timer.
func (m *RadioMedium) DeliverEvent(ev *kernel.Event) {
	if _, ok := ev.Payload.(evictionTimerMsg); !ok {
		logger.Panicf("radio medium cannot process event payload %T: %v", ev.Payload, types.ErrNotApplicable)
		return
	}
	m.evictionTimer = nil
	m.removeNonInterferingTransmissions()
}

// removeNonInterferingTransmissions frees the largest prefix of live
// transmissions that can no longer interfere with anything. Eviction only
// advances the left end, so a very long-lived transmission pins the whole
// matrix; that is the price of the simple monotone ring.
func (m *RadioMedium) removeNonInterferingTransmissions() {
	now := m.Now()
	evicted := 0
	for evicted < len(m.cache) && m.cache[evicted].interferenceEndTime <= now {
		row := m.cache[evicted]
		row.receptionCacheEntries = nil
		if m.cfg.DisplayCommunication {
			m.vis.TransmissionEvicted(row.transmission)
		}
		evicted++
	}
	if evicted > 0 {
		logger.Debugf("medium evicted %d non-interfering transmissions at %d", evicted, now)
		m.cache = m.cache[evicted:]
		m.transmissions = m.transmissions[evicted:]
		m.baseTransmissionId += evicted
	}
	if len(m.cache) > 0 {
		m.scheduleEvictionTimer(m.cache[0].interferenceEndTime)
	}
}

// sendToAffectedRadios delivers the frame to every potential receiver at its
// arrival time. With a neighbor cache attached, iteration is delegated.
func (m *RadioMedium) sendToAffectedRadios(transmitter *Radio, frame *Frame) {
	send := func(r *Radio) {
		if !m.isPotentialReceiver(r, frame.Transmission) {
			return
		}
		arrival := m.GetArrival(r, frame.Transmission)
		m.sim.SendDirect(arrival.StartTime-m.Now(), r, frame)
		if entry := m.receptionCacheEntryFor(r, frame.Transmission); entry != nil {
			entry.frame = frame
		}
		m.stats.SendCount++
		if m.commLog != nil {
			m.commLog.send(frame.Transmission, r, arrival)
		}
	}
	if m.neighborCache != nil {
		m.neighborCache.SendToNeighbors(transmitter, frame, send)
		return
	}
	for _, r := range m.radios {
		if r != nil && r != transmitter {
			send(r)
		}
	}
}

// isPotentialReceiver ANDs the enabled receiver filters.
func (m *RadioMedium) isPotentialReceiver(r *Radio, tx *Transmission) bool {
	if m.cfg.RadioModeFilter && !r.Mode().CanReceive() {
		return false
	}
	if m.cfg.ListeningFilter &&
		!m.attenuation.IsListeningCompatible(r.CreateListening(tx.StartTime, tx.EndTime), tx) {
		return false
	}
	if m.cfg.MacAddressFilter && tx.Packet != nil &&
		!tx.Packet.Destination.IsBroadcast() && tx.Packet.Destination != r.MacAddress() {
		return false
	}
	switch m.rangeFilter {
	case types.RangeFilterCommunicationRange:
		return m.withinPossibleRange(r, tx, m.limits.maxCommunicationRange)
	case types.RangeFilterInterferenceRange:
		return m.withinPossibleRange(r, tx, m.limits.maxInterferenceRange)
	default:
		return true
	}
}

// withinPossibleRange bounds the receiver position over the transmission
// duration by its movement slack; NaN bounds disable the filter.
func (m *RadioMedium) withinPossibleRange(r *Radio, tx *Transmission, maxRange float64) bool {
	if math.IsNaN(maxRange) {
		return true
	}
	slack := 0.0
	if speed := r.MaxSpeed(); !math.IsNaN(speed) {
		travelTime := tx.Duration + m.propagation.MaxPropagationDelay()
		slack = speed * float64(travelTime) / float64(types.Second)
	} else {
		return true
	}
	distance := tx.StartPosition.Distance(r.Position(tx.StartTime))
	return distance <= maxRange+slack
}

// updateLimits recomputes the extrema over the current radios. Any NaN input
// yields a NaN extremum (gonum's floats extrema skip NaN, so it is checked
// first), which is exactly the unspecified semantics the filters need.
func (m *RadioMedium) updateLimits() {
	var speeds, txPowers, rxSens, minIntPowers, gains, freqs, bitrates []float64
	for _, r := range m.radios {
		if r == nil {
			continue
		}
		speeds = append(speeds, r.maxSpeed)
		txPowers = append(txPowers, r.txPowerDbm)
		rxSens = append(rxSens, r.rxSensitivityDbm)
		minIntPowers = append(minIntPowers, r.minInterferencePowerDbm)
		gains = append(gains, r.antenna.MaxGainDb())
		freqs = append(freqs, r.centerFrequency)
		bitrates = append(bitrates, r.bitrate)
	}
	nanMax := func(vs []float64) float64 {
		if len(vs) == 0 {
			return math.NaN()
		}
		for _, v := range vs {
			if math.IsNaN(v) {
				return math.NaN()
			}
		}
		return floats.Max(vs)
	}
	nanMin := func(vs []float64) float64 {
		if len(vs) == 0 {
			return math.NaN()
		}
		for _, v := range vs {
			if math.IsNaN(v) {
				return math.NaN()
			}
		}
		return floats.Min(vs)
	}
	m.limits.maxSpeed = nanMax(speeds)
	m.limits.maxTransmissionPowerDbm = nanMax(txPowers)
	m.limits.minReceptionPowerDbm = nanMin(rxSens)
	m.limits.minInterferencePowerDbm = nanMin(minIntPowers)
	m.limits.maxAntennaGainDb = nanMax(gains)
	m.limits.minInterferenceTime = m.cfg.MinInterferenceTime

	minBitrate := nanMin(bitrates)
	if minBitrate > 0 {
		m.limits.maxTransmissionDuration =
			types.Duration(math.Round(maxFrameBits / minBitrate * float64(types.Second)))
	} else {
		m.limits.maxTransmissionDuration = 0
	}

	// a conservative range bound: the lowest carrier frequency loses the
	// least power over distance
	minFreq := nanMin(freqs)
	maxGain2 := 2 * m.limits.maxAntennaGainDb
	m.limits.maxCommunicationRange = m.cfg.MaxCommunicationRange
	if m.limits.maxCommunicationRange == 0 {
		m.limits.maxCommunicationRange = m.pathLoss.ComputeRange(minFreq,
			m.limits.maxTransmissionPowerDbm+maxGain2-m.limits.minReceptionPowerDbm)
	}
	m.limits.maxInterferenceRange = m.cfg.MaxInterferenceRange
	if m.limits.maxInterferenceRange == 0 {
		m.limits.maxInterferenceRange = m.pathLoss.ComputeRange(minFreq,
			m.limits.maxTransmissionPowerDbm+maxGain2-m.limits.minInterferencePowerDbm)
	}
}

// isInterferingTransmission applies the minimum-overlap rule between a
// transmission and a listening window.
func (m *RadioMedium) isInterferingTransmission(tx *Transmission, windowStart, windowEnd types.Time) bool {
	minTime := m.limits.minInterferenceTime
	lo := tx.StartTime
	if windowStart > lo {
		lo = windowStart
	}
	hi := tx.EndTime + minTime
	if windowEnd < hi {
		hi = windowEnd
	}
	return hi >= lo && hi-lo >= minTime
}

// invalidateCachedDecisions drops the decisions (and the interference they
// were computed from) of every cache cell whose listening window intersects
// the new transmission. Arrivals, listenings and receptions stay.
func (m *RadioMedium) invalidateCachedDecisions(newTx *Transmission) {
	for _, row := range m.cache {
		if row.transmission.Id == newTx.Id {
			continue
		}
		for _, entry := range row.receptionCacheEntries {
			if entry == nil || (entry.syncDecision == nil && entry.recvDecision == nil && entry.interference == nil) {
				continue
			}
			var start, end types.Time
			switch {
			case entry.listening != nil:
				start, end = entry.listening.StartTime, entry.listening.EndTime
			case entry.reception != nil:
				start, end = entry.reception.StartTime, entry.reception.EndTime
			default:
				continue
			}
			if m.isInterferingTransmission(newTx, start, end) {
				entry.interference = nil
				entry.syncDecision = nil
				entry.recvDecision = nil
			}
		}
	}
}

// GetArrival computes or fetches when the transmission reaches the radio.
func (m *RadioMedium) GetArrival(r *Radio, tx *Transmission) *Arrival {
	entry := m.receptionCacheEntryFor(r, tx)
	if entry == nil {
		return m.propagation.ComputeArrival(tx, r)
	}
	m.stats.CacheArrival.get(entry.arrival != nil)
	if entry.arrival == nil {
		entry.arrival = m.propagation.ComputeArrival(tx, r)
	}
	return entry.arrival
}

func (m *RadioMedium) getListening(r *Radio, tx *Transmission) *Listening {
	entry := m.receptionCacheEntryFor(r, tx)
	arrival := m.GetArrival(r, tx)
	if entry == nil {
		return r.CreateListening(arrival.StartTime, arrival.EndTime)
	}
	m.stats.CacheListening.get(entry.listening != nil)
	if entry.listening == nil {
		entry.listening = r.CreateListening(arrival.StartTime, arrival.EndTime)
	}
	return entry.listening
}

func (m *RadioMedium) getReception(r *Radio, tx *Transmission) *Reception {
	entry := m.receptionCacheEntryFor(r, tx)
	if entry == nil {
		m.stats.ReceptionComputationCount++
		return m.attenuation.ComputeReception(r, tx, m.GetArrival(r, tx))
	}
	m.stats.CacheReception.get(entry.reception != nil)
	if entry.reception == nil {
		m.stats.ReceptionComputationCount++
		entry.reception = m.attenuation.ComputeReception(r, tx, m.GetArrival(r, tx))
	}
	return entry.reception
}

func (m *RadioMedium) getInterference(r *Radio, tx *Transmission) *Interference {
	entry := m.receptionCacheEntryFor(r, tx)
	if entry != nil {
		m.stats.CacheInterference.get(entry.interference != nil)
		if entry.interference != nil {
			return entry.interference
		}
	}
	m.stats.InterferenceComputationCount++
	listening := m.getListening(r, tx)

	totalMw := 0.0
	if m.backgroundNoise != nil {
		totalMw += dbmToMw(m.backgroundNoise.ComputeNoiseDbm(listening))
	}
	var ids []types.TransmissionId
	for _, other := range m.transmissions {
		if other.Id == tx.Id || other.TransmitterId == r.Id() {
			continue
		}
		if !m.isInterferingTransmission(other, listening.StartTime, listening.EndTime) {
			continue
		}
		totalMw += dbmToMw(m.getReception(r, other).PowerDbm)
		ids = append(ids, other.Id)
	}
	interference := &Interference{PowerDbm: mwToDbm(totalMw), TransmissionIds: ids}
	if entry != nil {
		entry.interference = interference
	}
	return interference
}

func (m *RadioMedium) getSynchronizationDecision(r *Radio, tx *Transmission) *Decision {
	entry := m.receptionCacheEntryFor(r, tx)
	if entry != nil {
		m.stats.CacheSyncDecision.get(entry.syncDecision != nil)
		if entry.syncDecision != nil {
			return entry.syncDecision
		}
	}
	m.stats.SynchronizationDecisionComputationCount++
	reception := m.getReception(r, tx)
	interference := m.getInterference(r, tx)
	snir := reception.PowerDbm - interference.PowerDbm
	attempted := r.Mode().CanReceive() && reception.PowerDbm >= r.rxSensitivityDbm
	decision := &Decision{
		Attempted:  attempted,
		Successful: attempted && snir >= r.snirThresholdDb,
		SnirDb:     snir,
	}
	if entry != nil {
		entry.syncDecision = decision
	}
	return decision
}

func (m *RadioMedium) getReceptionDecision(r *Radio, tx *Transmission) *Decision {
	entry := m.receptionCacheEntryFor(r, tx)
	if entry != nil {
		m.stats.CacheRecvDecision.get(entry.recvDecision != nil)
		if entry.recvDecision != nil {
			return entry.recvDecision
		}
	}
	m.stats.ReceptionDecisionComputationCount++
	sync := m.getSynchronizationDecision(r, tx)
	reception := m.getReception(r, tx)
	interference := m.getInterference(r, tx)
	snir := reception.PowerDbm - interference.PowerDbm
	decision := &Decision{
		Attempted:  sync.Successful,
		Successful: sync.Successful && snir >= r.snirThresholdDb,
		SnirDb:     snir,
	}
	if entry != nil {
		entry.recvDecision = decision
	}
	return decision
}

// SynchronizePacket decides whether the receiver locks onto the frame.
func (m *RadioMedium) SynchronizePacket(receiver *Radio, frame *Frame) *Decision {
	return m.getSynchronizationDecision(receiver, frame.Transmission)
}

// ReceivePacket decides the reception and returns the payload on success. A
// failed reception is not an error.
func (m *RadioMedium) ReceivePacket(receiver *Radio, frame *Frame) (*MacPacket, bool) {
	decision := m.getReceptionDecision(receiver, frame.Transmission)
	if m.commLog != nil {
		m.commLog.reception(m.Now(), frame.Transmission, receiver, decision)
	}
	if m.cfg.DisplayCommunication || (m.cfg.LeaveCommunicationTrail && decision.Successful) {
		m.vis.ReceptionDecided(frame.Transmission, receiver, decision)
	}
	if !decision.Successful {
		return nil, false
	}
	return frame.Transmission.Packet, true
}

// ListenOnMedium reports whether the medium is busy for the given listening.
func (m *RadioMedium) ListenOnMedium(receiver *Radio, listening *Listening) *ListeningDecision {
	m.stats.ListeningDecisionComputationCount++
	maxMw := 0.0
	if m.backgroundNoise != nil {
		maxMw = dbmToMw(m.backgroundNoise.ComputeNoiseDbm(listening))
	}
	for _, tx := range m.transmissions {
		if tx.TransmitterId == receiver.Id() {
			continue
		}
		if !m.isInterferingTransmission(tx, listening.StartTime, listening.EndTime) {
			continue
		}
		if p := dbmToMw(m.getReception(receiver, tx).PowerDbm); p > maxMw {
			maxMw = p
		}
	}
	maxDbm := mwToDbm(maxMw)
	return &ListeningDecision{
		Busy:        maxDbm >= receiver.minInterferencePowerDbm,
		MaxPowerDbm: maxDbm,
	}
}

func (m *RadioMedium) IsSynchronizationAttempted(r *Radio, tx *Transmission) bool {
	return m.getSynchronizationDecision(r, tx).Attempted
}

func (m *RadioMedium) IsReceptionAttempted(r *Radio, tx *Transmission) bool {
	return m.getReceptionDecision(r, tx).Attempted
}

func dbmToMw(dbm types.DbmValue) float64 {
	return math.Pow(10, dbm/10)
}

func mwToDbm(mw float64) types.DbmValue {
	return 10 * math.Log10(mw)
}
