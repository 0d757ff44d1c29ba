// Package benchstats collects client-side query statistics for the load
// generator in cmd/dnsbench. All methods are safe for concurrent use.
package benchstats

import "sync/atomic"

// Stats accumulates counters across a fleet of querying goroutines.
type Stats struct {
	queriesSent    atomic.Uint64
	queriesTimeout atomic.Uint64
	responsesNX    atomic.Uint64
	responsesErr   atomic.Uint64
	latencyTotalNs atomic.Uint64
}

// New creates an empty stats collector.
func New() *Stats {
	return &Stats{}
}

// RecordSent records that a query was written to the wire.
func (s *Stats) RecordSent() {
	s.queriesSent.Add(1)
}

// RecordTimeout records a query that never received a response in time.
func (s *Stats) RecordTimeout() {
	s.queriesTimeout.Add(1)
}

// RecordNXDOMAIN records a response whose RCODE was NXDOMAIN.
func (s *Stats) RecordNXDOMAIN() {
	s.responsesNX.Add(1)
}

// RecordError records a response whose RCODE indicated failure other than
// NXDOMAIN, or a response that could not be decoded.
func (s *Stats) RecordError() {
	s.responsesErr.Add(1)
}

// RecordLatency records the round-trip latency of one completed query.
func (s *Stats) RecordLatency(ns int64) {
	if ns > 0 {
		s.latencyTotalNs.Add(uint64(ns))
	}
}

// Snapshot is a point-in-time view of the accumulated counters.
type Snapshot struct {
	QueriesSent    uint64
	QueriesTimeout uint64
	ResponsesNX    uint64
	ResponsesErr   uint64
	AvgLatencyMs   float64
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() Snapshot {
	sent := s.queriesSent.Load()
	latencyNs := s.latencyTotalNs.Load()

	avgLatencyMs := 0.0
	if sent > 0 {
		avgLatencyMs = float64(latencyNs) / float64(sent) / 1e6
	}

	return Snapshot{
		QueriesSent:    sent,
		QueriesTimeout: s.queriesTimeout.Load(),
		ResponsesNX:    s.responsesNX.Load(),
		ResponsesErr:   s.responsesErr.Load(),
		AvgLatencyMs:   avgLatencyMs,
	}
}
