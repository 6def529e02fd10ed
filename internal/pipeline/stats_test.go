package pipeline

import (
	"testing"
	"time"
)

func TestStatsEmptySnapshot(t *testing.T) {
	s := NewPipelineStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 || snap.MinMs != 0 || snap.AvgMs != 0 {
		t.Errorf("empty snapshot = %+v", snap)
	}
}

func TestStatsAggregates(t *testing.T) {
	s := NewPipelineStats(time.Hour)
	for _, ms := range []int64{10, 20, 30, 40} {
		s.Record(ms)
	}

	snap := s.Snapshot()
	if snap.Count != 4 {
		t.Errorf("count = %d", snap.Count)
	}
	if snap.MinMs != 10 || snap.MaxMs != 40 {
		t.Errorf("min/max = %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 25 {
		t.Errorf("avg = %v", snap.AvgMs)
	}
	if snap.P50Ms != 25 {
		t.Errorf("p50 = %v", snap.P50Ms)
	}
}

func TestStatsNegativeDurationClamped(t *testing.T) {
	s := NewPipelineStats(time.Hour)
	s.Record(-5)
	if snap := s.Snapshot(); snap.MinMs != 0 {
		t.Errorf("min = %d", snap.MinMs)
	}
}

func TestStatsWindowPrunesOldSamples(t *testing.T) {
	s := NewPipelineStats(10 * time.Millisecond)
	s.Record(100)
	time.Sleep(25 * time.Millisecond)
	s.Record(50)

	snap := s.Snapshot()
	if snap.Count != 1 || snap.MaxMs != 50 {
		t.Errorf("snapshot = %+v, want only the recent sample", snap)
	}
}

func TestPercentileInterpolation(t *testing.T) {
	values := []int64{10, 20, 30, 40}
	if got := percentile(values, 0); got != 10 {
		t.Errorf("p0 = %v", got)
	}
	if got := percentile(values, 100); got != 40 {
		t.Errorf("p100 = %v", got)
	}
	if got := percentile(values, 50); got != 25 {
		t.Errorf("p50 = %v", got)
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("empty = %v", got)
	}
}
