package metrics

import "testing"

var sink []byte

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemorySnapshot_Since(t *testing.T) {
	mc := NewMemoryCollector()
	before := mc.Snapshot()

	sink = make([]byte, 1<<20)

	delta := mc.Snapshot().Since(before)
	if delta.Bytes < 1<<20 {
		t.Errorf("Bytes = %d, want at least 1 MiB", delta.Bytes)
	}
	if delta.Objects == 0 {
		t.Error("Objects should be > 0")
	}
}
