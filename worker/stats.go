// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package worker

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stats is the thread-safe aggregate described in spec.md §4.6.
// Per-counter fields use atomics so readers never block writers;
// Report() assembles a snapshot that is tolerably racy across
// counters, matching the "advisory" ordering guarantee of spec.md §5.
type Stats struct {
	jobCountCollect int64
	jobCountProcess int64
	collectDurSum   int64 // milliseconds
	processDurSum   int64 // milliseconds

	mu         sync.Mutex
	lastReport time.Time

	promJobsCollected   prometheus.Counter
	promJobsProcessed   prometheus.Counter
	promCollectDuration prometheus.Gauge
	promProcessDuration prometheus.Gauge
}

// NewStats registers the pipeline's counters and gauges against reg
// and returns a ready Stats. reg may be a fresh prometheus.Registry or
// prometheus.DefaultRegisterer.
func NewStats(reg prometheus.Registerer) (*Stats, error) {
	s := &Stats{
		promJobsCollected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vericore_jobs_collected_total",
			Help: "Total number of jobs retrieved from the job source.",
		}),
		promJobsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vericore_jobs_processed_total",
			Help: "Total number of jobs successfully processed.",
		}),
		promCollectDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vericore_collect_duration_ms",
			Help: "Duration in milliseconds of the most recent collection round.",
		}),
		promProcessDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vericore_process_duration_ms",
			Help: "Duration in milliseconds of the most recently processed job.",
		}),
	}
	for _, c := range []prometheus.Collector{
		s.promJobsCollected, s.promJobsProcessed, s.promCollectDuration, s.promProcessDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("worker: registering stats collector: %w", err)
		}
	}
	return s, nil
}

// UpdateCollectorStats records one collection round: dur is its wall
// time and count the number of jobs retrieved.
func (s *Stats) UpdateCollectorStats(dur time.Duration, count int) {
	atomic.AddInt64(&s.jobCountCollect, int64(count))
	atomic.AddInt64(&s.collectDurSum, dur.Milliseconds())
	s.promJobsCollected.Add(float64(count))
	s.promCollectDuration.Set(float64(dur.Milliseconds()))
}

// UpdateProcessorStats records one processed job's duration.
func (s *Stats) UpdateProcessorStats(dur time.Duration) {
	atomic.AddInt64(&s.jobCountProcess, 1)
	atomic.AddInt64(&s.processDurSum, dur.Milliseconds())
	s.promJobsProcessed.Inc()
	s.promProcessDuration.Set(float64(dur.Milliseconds()))
}

// counts returns the current collect/process counters, used both by
// Report and by the reporter loop's "has anything happened" check.
func (s *Stats) counts() (collect, process int64) {
	return atomic.LoadInt64(&s.jobCountCollect), atomic.LoadInt64(&s.jobCountProcess)
}

// Report renders the current snapshot as the canonical text used for
// both logging and idempotent-suppression comparisons (spec.md §9:
// "the contract is on the rendered text").
func (s *Stats) Report() string {
	collect, process := s.counts()
	collectSum := atomic.LoadInt64(&s.collectDurSum)
	processSum := atomic.LoadInt64(&s.processDurSum)

	collectAvg, processAvg := 0.0, 0.0
	if collect > 0 {
		collectAvg = float64(collectSum) / float64(collect)
	}
	if process > 0 {
		processAvg = float64(processSum) / float64(process)
	}

	return fmt.Sprintf(
		"collected %d jobs (avg %.1fms), processed %d jobs (avg %.1fms)",
		collect, collectAvg, process, processAvg,
	)
}

// Reset zeroes the counters after a successful report, recording the
// time of the reset as the last report time.
func (s *Stats) Reset() {
	atomic.StoreInt64(&s.jobCountCollect, 0)
	atomic.StoreInt64(&s.jobCountProcess, 0)
	atomic.StoreInt64(&s.collectDurSum, 0)
	atomic.StoreInt64(&s.processDurSum, 0)

	s.mu.Lock()
	s.lastReport = time.Now()
	s.mu.Unlock()
}

// LastReport returns the time of the last Reset call.
func (s *Stats) LastReport() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReport
}
