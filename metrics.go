package mtbvalidator

import (
	"sync/atomic"
	"time"
)

// Metrics tracks checking activity using lock-free atomic operations.
// All methods are safe for concurrent use.
type Metrics struct {
	checksTotal atomic.Uint64
	filesValid  atomic.Uint64

	checkTimeTotal atomic.Uint64 // nanoseconds
	checkTimeMin   atomic.Uint64
	checkTimeMax   atomic.Uint64

	fatalsTotal   atomic.Uint64
	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
	infosTotal    atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so the first sample becomes the minimum
	m.checkTimeMin.Store(^uint64(0))
	return m
}

// RecordCheck records one completed check.
func (m *Metrics) RecordCheck(duration time.Duration, valid bool) {
	m.checksTotal.Add(1)
	if valid {
		m.filesValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.checkTimeTotal.Add(ns)

	for {
		old := m.checkTimeMin.Load()
		if ns >= old {
			break
		}
		if m.checkTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}

	for {
		old := m.checkTimeMax.Load()
		if ns <= old {
			break
		}
		if m.checkTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordIssues records the issues of one report by severity.
func (m *Metrics) RecordIssues(issues []Issue) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityFatal:
			m.fatalsTotal.Add(1)
		case SeverityError:
			m.errorsTotal.Add(1)
		case SeverityWarning:
			m.warningsTotal.Add(1)
		case SeverityInfo:
			m.infosTotal.Add(1)
		}
	}
}

// Snapshot is a point-in-time copy of the metric counters.
type Snapshot struct {
	ChecksTotal   uint64        `json:"checksTotal"`
	FilesValid    uint64        `json:"filesValid"`
	AvgCheckTime  time.Duration `json:"avgCheckTime"`
	MinCheckTime  time.Duration `json:"minCheckTime"`
	MaxCheckTime  time.Duration `json:"maxCheckTime"`
	FatalsTotal   uint64        `json:"fatalsTotal"`
	ErrorsTotal   uint64        `json:"errorsTotal"`
	WarningsTotal uint64        `json:"warningsTotal"`
	InfosTotal    uint64        `json:"infosTotal"`
}

// Snapshot returns a consistent-enough copy of the counters.
func (m *Metrics) Snapshot() Snapshot {
	total := m.checksTotal.Load()

	var avg time.Duration
	if total > 0 {
		avg = time.Duration(m.checkTimeTotal.Load() / total)
	}

	min := m.checkTimeMin.Load()
	if min == ^uint64(0) {
		min = 0
	}

	return Snapshot{
		ChecksTotal:   total,
		FilesValid:    m.filesValid.Load(),
		AvgCheckTime:  avg,
		MinCheckTime:  time.Duration(min),
		MaxCheckTime:  time.Duration(m.checkTimeMax.Load()),
		FatalsTotal:   m.fatalsTotal.Load(),
		ErrorsTotal:   m.errorsTotal.Load(),
		WarningsTotal: m.warningsTotal.Load(),
		InfosTotal:    m.infosTotal.Load(),
	}
}

// Reset zeroes all counters.
func (m *Metrics) Reset() {
	m.checksTotal.Store(0)
	m.filesValid.Store(0)
	m.checkTimeTotal.Store(0)
	m.checkTimeMin.Store(^uint64(0))
	m.checkTimeMax.Store(0)
	m.fatalsTotal.Store(0)
	m.errorsTotal.Store(0)
	m.warningsTotal.Store(0)
	m.infosTotal.Store(0)
}
