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

import "github.com/prometheus/client_golang/prometheus"

// CachePairStats is a (get, hit) counter pair of one cache layer.
type CachePairStats struct {
	GetCount uint64
	HitCount uint64
}

func (c *CachePairStats) get(hit bool) {
	c.GetCount++
	if hit {
		c.HitCount++
	}
}

// Statistics tallies the work done by the medium. No locking: the core is
// single-threaded cooperative.
type Statistics struct {
	TransmissionCount uint64
	SendCount         uint64

	ReceptionComputationCount               uint64
	InterferenceComputationCount            uint64
	SynchronizationDecisionComputationCount uint64
	ReceptionDecisionComputationCount       uint64
	ListeningDecisionComputationCount       uint64

	CacheArrival      CachePairStats
	CacheListening    CachePairStats
	CacheReception    CachePairStats
	CacheInterference CachePairStats
	CacheSyncDecision CachePairStats
	CacheRecvDecision CachePairStats
}

// StatsCollector exposes the medium statistics as prometheus counters.
type StatsCollector struct {
	medium *RadioMedium

	transmissions *prometheus.Desc
	sends         *prometheus.Desc
	computations  *prometheus.Desc
	cacheGets     *prometheus.Desc
	cacheHits     *prometheus.Desc
}

func NewStatsCollector(m *RadioMedium) *StatsCollector {
	return &StatsCollector{
		medium: m,
		transmissions: prometheus.NewDesc("rfsim_medium_transmissions_total",
			"Total number of transmissions recorded on the medium.", nil, nil),
		sends: prometheus.NewDesc("rfsim_medium_frame_sends_total",
			"Total number of frame deliveries scheduled.", nil, nil),
		computations: prometheus.NewDesc("rfsim_medium_computations_total",
			"Total number of model computations, by kind.", []string{"kind"}, nil),
		cacheGets: prometheus.NewDesc("rfsim_medium_cache_gets_total",
			"Total number of cache queries, by layer.", []string{"layer"}, nil),
		cacheHits: prometheus.NewDesc("rfsim_medium_cache_hits_total",
			"Total number of cache hits, by layer.", []string{"layer"}, nil),
	}
}

func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.transmissions
	ch <- c.sends
	ch <- c.computations
	ch <- c.cacheGets
	ch <- c.cacheHits
}

func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.medium.Stats()
	counter := func(d *prometheus.Desc, v uint64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v), labels...)
	}
	counter(c.transmissions, s.TransmissionCount)
	counter(c.sends, s.SendCount)
	counter(c.computations, s.ReceptionComputationCount, "reception")
	counter(c.computations, s.InterferenceComputationCount, "interference")
	counter(c.computations, s.SynchronizationDecisionComputationCount, "syncDecision")
	counter(c.computations, s.ReceptionDecisionComputationCount, "recvDecision")
	counter(c.computations, s.ListeningDecisionComputationCount, "listeningDecision")
	for _, layer := range []struct {
		name  string
		stats CachePairStats
	}{
		{"arrival", s.CacheArrival},
		{"listening", s.CacheListening},
		{"reception", s.CacheReception},
		{"interference", s.CacheInterference},
		{"syncDecision", s.CacheSyncDecision},
		{"recvDecision", s.CacheRecvDecision},
	} {
		counter(c.cacheGets, layer.stats.GetCount, layer.name)
		counter(c.cacheHits, layer.stats.HitCount, layer.name)
	}
}
