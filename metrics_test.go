package mtbvalidator

import (
	"testing"
	"time"
)

func TestMetrics_RecordCheck(t *testing.T) {
	m := NewMetrics()

	m.RecordCheck(10*time.Millisecond, true)
	m.RecordCheck(30*time.Millisecond, false)

	s := m.Snapshot()
	if s.ChecksTotal != 2 {
		t.Errorf("ChecksTotal = %d; want 2", s.ChecksTotal)
	}
	if s.FilesValid != 1 {
		t.Errorf("FilesValid = %d; want 1", s.FilesValid)
	}
	if s.MinCheckTime != 10*time.Millisecond {
		t.Errorf("MinCheckTime = %s; want 10ms", s.MinCheckTime)
	}
	if s.MaxCheckTime != 30*time.Millisecond {
		t.Errorf("MaxCheckTime = %s; want 30ms", s.MaxCheckTime)
	}
	if s.AvgCheckTime != 20*time.Millisecond {
		t.Errorf("AvgCheckTime = %s; want 20ms", s.AvgCheckTime)
	}
}

func TestMetrics_RecordIssues(t *testing.T) {
	m := NewMetrics()
	m.RecordIssues([]Issue{
		{Severity: SeverityFatal},
		{Severity: SeverityError},
		{Severity: SeverityError},
		{Severity: SeverityWarning},
		{Severity: SeverityInfo},
	})

	s := m.Snapshot()
	if s.FatalsTotal != 1 || s.ErrorsTotal != 2 || s.WarningsTotal != 1 || s.InfosTotal != 1 {
		t.Errorf("Snapshot() = %+v; want 1/2/1/1 by severity", s)
	}
}

func TestMetrics_EmptySnapshot(t *testing.T) {
	s := NewMetrics().Snapshot()
	if s.MinCheckTime != 0 {
		t.Errorf("MinCheckTime on empty metrics = %s; want 0", s.MinCheckTime)
	}
	if s.AvgCheckTime != 0 {
		t.Errorf("AvgCheckTime on empty metrics = %s; want 0", s.AvgCheckTime)
	}
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.RecordCheck(time.Millisecond, true)
	m.RecordIssues([]Issue{{Severity: SeverityError}})
	m.Reset()

	s := m.Snapshot()
	if s.ChecksTotal != 0 || s.ErrorsTotal != 0 {
		t.Errorf("Snapshot() after Reset = %+v; want zeroes", s)
	}
}
